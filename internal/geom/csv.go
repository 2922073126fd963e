package geom

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrEmptyCSV       = errors.New("csv: empty")
	ErrNoCoordColumns = errors.New("csv: latitude/longitude columns not found")
	ErrNoCSVPoints    = errors.New("csv: no valid points parsed")
)

// Table is the attribute table that accompanies a loaded geometry, one row
// per feature.
type Table struct {
	Columns []string
	Rows    [][]string
}

// LoadCSV reads a CSV with latitude/longitude columns and returns one point
// per parsable row as a MultiPoint, with the rows that produced them.
// Column detection: lat|latitude|y and lon|lng|long|longitude|x (case-insensitive).
func LoadCSV(r io.Reader) (Geometry[float64], Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Geometry[float64]{}, Table{}, err
	}
	if len(recs) == 0 {
		return Geometry[float64]{}, Table{}, ErrEmptyCSV
	}
	header := recs[0]
	idxLat, idxLon := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return Geometry[float64]{}, Table{}, ErrNoCoordColumns
	}
	var (
		pts  MultiPoint[float64]
		rows [][]string
	)
	for _, row := range recs[1:] {
		if idxLon >= len(row) || idxLat >= len(row) {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, Point[float64]{lon, lat})
		vals := make([]string, len(header))
		copy(vals, row)
		rows = append(rows, vals)
	}
	if len(pts) == 0 {
		return Geometry[float64]{}, Table{}, ErrNoCSVPoints
	}
	return FromMultiPoint(pts), Table{Columns: header, Rows: rows}, nil
}

// LoadCSVFile is LoadCSV over a file.
func LoadCSVFile(path string) (Geometry[float64], Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Geometry[float64]{}, Table{}, err
	}
	defer f.Close()
	return LoadCSV(f)
}
