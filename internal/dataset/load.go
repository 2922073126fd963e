package dataset

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"geotraits/internal/ctgeom"
	"geotraits/internal/geom"
	"geotraits/internal/orbgeom"
)

var ErrUnsupported = errors.New("dataset: unsupported file type")

// Extensions lists the file extensions Load understands.
func Extensions() []string {
	return []string{".geojson", ".json", ".wkt", ".wkb", ".csv", ".kml", ".shp"}
}

// Supported reports whether Load handles path's extension.
func Supported(path string) bool {
	return slices.Contains(Extensions(), strings.ToLower(filepath.Ext(path)))
}

// Load decodes path according to its extension.
func Load(path string) (Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		g, props, err := orbgeom.DecodeGeoJSON(data)
		if err != nil {
			return nil, err
		}
		return newLayer(orbgeom.Family(), g, path, propsTable(props)), nil
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return fromWKT(string(data), path)
	case ".wkb":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		g, err := orbgeom.ParseWKB(unhex(data))
		if err != nil {
			return nil, err
		}
		return newLayer(orbgeom.Family(), g, path, table{}), nil
	case ".csv":
		g, t, err := geom.LoadCSVFile(path)
		if err != nil {
			return nil, err
		}
		return newLayer(geom.Family[float64](), &g, path, table{t.Columns, t.Rows}), nil
	case ".kml":
		g, t, err := geom.LoadKMLFile(path)
		if err != nil {
			return nil, err
		}
		return newLayer(geom.Family[float64](), &g, path, table{t.Columns, t.Rows}), nil
	case ".shp":
		sf, err := ctgeom.LoadShapefile(path)
		if err != nil {
			return nil, err
		}
		return newLayer(ctgeom.Family(), sf.Geometry, path, table{sf.Fields, sf.Records}), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
}

// FromWKT parses pasted WKT. The source is reported as "pasted".
func FromWKT(s string) (Dataset, error) {
	return fromWKT(s, "pasted")
}

func fromWKT(s, source string) (Dataset, error) {
	g, err := orbgeom.ParseWKT(s)
	if err != nil {
		return nil, err
	}
	return newLayer(orbgeom.Family(), g, source, table{}), nil
}

// unhex accepts WKB files written as hex text, as PostGIS prints them.
func unhex(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed)%2 != 0 {
		return data
	}
	raw := make([]byte, hex.DecodedLen(len(trimmed)))
	if _, err := hex.Decode(raw, trimmed); err != nil {
		return data
	}
	return raw
}

// propsTable unions property keys in first-seen order. Missing values are
// empty strings; non-scalar values are rendered as JSON.
func propsTable(props []orbgeom.Properties) table {
	var (
		order []string
		seen  = map[string]bool{}
	)
	for _, p := range props {
		keys := make([]string, 0, len(p))
		for k := range p {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)
		for _, k := range keys {
			seen[k] = true
			order = append(order, k)
		}
	}
	if len(order) == 0 {
		return table{}
	}
	rows := make([][]string, 0, len(props))
	for _, p := range props {
		vals := make([]string, 0, len(order))
		for _, k := range order {
			vals = append(vals, propString(p[k]))
		}
		rows = append(rows, vals)
	}
	return table{columns: order, rows: rows}
}

func propString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprint(t)
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}
