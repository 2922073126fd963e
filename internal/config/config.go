package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Zoom limits shared with the viewer's +/- keys.
const (
	MinZoom float64 = 0.05
	MaxZoom float64 = 64
)

// Config holds the viewer configuration.
type Config struct {
	View ViewConfig `mapstructure:"view"`
	Log  LogConfig  `mapstructure:"log"`
}

type ViewConfig struct {
	Zoom    float64 `mapstructure:"zoom"`
	Sidebar bool    `mapstructure:"sidebar"`
	Help    bool    `mapstructure:"help"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load reads configuration into v from defaults, an optional config file and
// the environment. Flags bound to v beforehand take precedence. An empty
// file searches for geomap.yaml in the working directory and
// $HOME/.config/geomap.
func Load(v *viper.Viper, file string) (*Config, error) {
	// Defaults
	v.SetDefault("view.zoom", 1.0)
	v.SetDefault("view.sidebar", false)
	v.SetDefault("view.help", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("geomap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/geomap")
		_ = v.ReadInConfig() // OK if missing
	}

	// Environment variables: GEOMAP_VIEW_ZOOM → view.zoom
	v.SetEnvPrefix("GEOMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if c.View.Zoom < MinZoom || c.View.Zoom > MaxZoom {
		errs = append(errs, fmt.Sprintf("view.zoom must be %g-%g, got %g", MinZoom, MaxZoom, c.View.Zoom))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
