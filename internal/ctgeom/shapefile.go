package ctgeom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
)

var ErrEmptyShapefile = errors.New("shapefile: no shapes")

// Shapefile is the content of one .shp/.dbf pair. Records[i] holds the
// attributes of the i-th member of Geometry, in Fields order.
type Shapefile struct {
	Geometry *Geometry
	Fields   []string
	Records  [][]string
}

// LoadShapefile reads every non-null shape of path into a
// GeometryCollection. The .dbf next to it supplies the attributes.
func LoadShapefile(path string) (*Shapefile, error) {
	d, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("shapefile: %w", err)
	}
	defer d.Close()

	var fields []string
	for _, f := range d.Reader.Fields() {
		fields = append(fields, f.String())
	}

	var (
		shapes  geom.GeometryCollection
		records [][]string
	)
	for {
		g, vals, more := d.DecodeRowFields(fields...)
		if !more || d.Error() != nil {
			break
		}
		if g == nil {
			continue
		}
		rec := make([]string, len(fields))
		for i, name := range fields {
			rec[i] = strings.Trim(vals[name], "\x00 ")
		}
		shapes = append(shapes, g)
		records = append(records, rec)
	}
	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("shapefile: %w", err)
	}
	if len(shapes) == 0 {
		return nil, ErrEmptyShapefile
	}

	w, err := Wrap(shapes)
	if err != nil {
		return nil, err
	}
	return &Shapefile{Geometry: w, Fields: fields, Records: records}, nil
}
