package geom

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrNoKMLGeometry = errors.New("kml: no geometries found")

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer string   `xml:"outerBoundaryIs>LinearRing>coordinates"`
	Inner []string `xml:"innerBoundaryIs>LinearRing>coordinates"`
}

type kmlShapes struct {
	Points   []kmlCoords  `xml:"Point"`
	Lines    []kmlCoords  `xml:"LineString"`
	Rings    []kmlCoords  `xml:"LinearRing"`
	Polygons []kmlPolygon `xml:"Polygon"`
	Multi    []kmlShapes  `xml:"MultiGeometry"`
}

type kmlPlacemark struct {
	Name string `xml:"name"`
	kmlShapes
}

// LoadKML reads every Placemark in a KML document, wherever it is nested,
// and returns them as a GeometryCollection in document order. The table has
// one row per placemark with its name.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(r io.Reader) (Geometry[float64], Table, error) {
	dec := xml.NewDecoder(r)
	var (
		items GeometryCollection[float64]
		rows  [][]string
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Geometry[float64]{}, Table{}, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return Geometry[float64]{}, Table{}, err
		}
		g, ok := pm.kmlShapes.geometry()
		if !ok {
			continue
		}
		items = append(items, g)
		rows = append(rows, []string{strings.TrimSpace(pm.Name), g.Kind().String()})
	}
	if len(items) == 0 {
		return Geometry[float64]{}, Table{}, ErrNoKMLGeometry
	}
	return FromCollection(items...), Table{Columns: []string{"name", "kind"}, Rows: rows}, nil
}

// LoadKMLFile is LoadKML over a file.
func LoadKMLFile(path string) (Geometry[float64], Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Geometry[float64]{}, Table{}, err
	}
	defer f.Close()
	return LoadKML(f)
}

// geometry returns the single shape in s, or a collection when s holds more
// than one. Shapes without coordinates are dropped.
func (s kmlShapes) geometry() (Geometry[float64], bool) {
	var parts []Geometry[float64]
	for _, p := range s.Points {
		if ls := parseKMLCoords(p.Coordinates); len(ls) > 0 {
			parts = append(parts, FromPoint(ls[0]))
		}
	}
	for _, l := range s.Lines {
		if ls := parseKMLCoords(l.Coordinates); len(ls) > 0 {
			parts = append(parts, FromLineString(ls))
		}
	}
	for _, r := range s.Rings {
		if ls := parseKMLCoords(r.Coordinates); len(ls) > 0 {
			parts = append(parts, FromPolygon(Polygon[float64]{ls}))
		}
	}
	for _, y := range s.Polygons {
		outer := parseKMLCoords(y.Outer)
		if len(outer) == 0 {
			continue
		}
		poly := Polygon[float64]{outer}
		for _, in := range y.Inner {
			if hole := parseKMLCoords(in); len(hole) > 0 {
				poly = append(poly, hole)
			}
		}
		parts = append(parts, FromPolygon(poly))
	}
	for _, m := range s.Multi {
		if g, ok := m.geometry(); ok {
			parts = append(parts, g)
		}
	}
	switch len(parts) {
	case 0:
		return Geometry[float64]{}, false
	case 1:
		return parts[0], true
	}
	return FromCollection(parts...), true
}

// parseKMLCoords parses whitespace separated "lon,lat[,alt]" tuples.
func parseKMLCoords(s string) LineString[float64] {
	var out LineString[float64]
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, Point[float64]{lon, lat})
	}
	return out
}
