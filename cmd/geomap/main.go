// Command geomap is a terminal viewer for vector geometry files.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"geotraits/internal/config"
	"geotraits/internal/logging"
	"geotraits/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what PersistentPreRunE sets up for the subcommands.
type app struct {
	v        *viper.Viper
	cfgFile  string
	cfg      *config.Config
	log      *logrus.Logger
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "geomap [file]",
		Short: "Terminal viewer for GeoJSON, WKT, WKB, CSV, KML and shapefiles",
		Long: `geomap renders vector geometry in the terminal with braille characters.
Open a file directly, browse the working directory with Tab, or paste WKT with p.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var m tea.Model
			if len(args) == 1 {
				m = tui.NewWithPath(args[0], a.cfg.View, a.log)
			} else {
				m = tui.New(a.cfg.View, a.log)
			}
			a.log.WithField("args", args).Info("starting viewer")
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
				return fmt.Errorf("viewer: %w", err)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: geomap.yaml in . or $HOME/.config/geomap)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-file", "", "write logs to this file instead of discarding them")
	flags.Float64("zoom", 1.0, "initial zoom factor")
	for key, flag := range map[string]string{
		"log.level": "log-level",
		"log.file":  "log-file",
		"view.zoom": "zoom",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newInfoCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closeLog = cfg, logger, closeLog
	return nil
}
