package orbgeom

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

var (
	ErrEmptyWKT        = errors.New("wkt: empty")
	ErrNoGeoJSONType   = errors.New("geojson: missing type")
	ErrNoGeoJSONShapes = errors.New("geojson: no geometries found")
)

// ParseWKT parses any OGC WKT geometry, collections included.
func ParseWKT(s string) (*Geometry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyWKT
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	return Wrap(g)
}

// ParseWKB parses a WKB (or EWKB without SRID) geometry.
func ParseWKB(b []byte) (*Geometry, error) {
	g, err := wkb.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("wkb: %w", err)
	}
	return Wrap(g)
}

// Properties is the properties object of one GeoJSON feature.
type Properties = geojson.Properties

// DecodeGeoJSON accepts a FeatureCollection, a Feature or a bare geometry.
// A FeatureCollection becomes a GeometryCollection with one member per
// feature that has a geometry, and props holds their properties in the same
// order. A single Feature or geometry is returned as is.
func DecodeGeoJSON(data []byte) (g *Geometry, props []Properties, err error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, nil, fmt.Errorf("geojson: %w", err)
	}
	switch probe.Type {
	case "":
		return nil, nil, ErrNoGeoJSONType
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, nil, fmt.Errorf("geojson: %w", err)
		}
		var members orb.Collection
		for _, f := range fc.Features {
			if f.Geometry == nil {
				continue
			}
			members = append(members, f.Geometry)
			props = append(props, f.Properties)
		}
		if len(members) == 0 {
			return nil, nil, ErrNoGeoJSONShapes
		}
		g, err = Wrap(members)
		return g, props, err
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, nil, fmt.Errorf("geojson: %w", err)
		}
		if f.Geometry == nil {
			return nil, nil, ErrNoGeoJSONShapes
		}
		g, err = Wrap(f.Geometry)
		return g, []Properties{f.Properties}, err
	default:
		gj, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, nil, fmt.Errorf("geojson: %w", err)
		}
		g, err = Wrap(gj.Geometry())
		return g, nil, err
	}
}
