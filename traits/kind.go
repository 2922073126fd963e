package traits

import (
	"strconv"
	"strings"
)

// Kind is the discriminant of a GeometryType. The set is closed: the zero
// value is never produced by classification.
type Kind uint8

const (
	KindPoint Kind = iota + 1
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
)

var kindNames = [...]string{
	KindPoint:              "Point",
	KindLineString:         "LineString",
	KindPolygon:            "Polygon",
	KindMultiPoint:         "MultiPoint",
	KindMultiLineString:    "MultiLineString",
	KindMultiPolygon:       "MultiPolygon",
	KindGeometryCollection: "GeometryCollection",
}

// Kinds lists the seven kinds in discriminant order.
func Kinds() []Kind {
	return []Kind{
		KindPoint,
		KindLineString,
		KindPolygon,
		KindMultiPoint,
		KindMultiLineString,
		KindMultiPolygon,
		KindGeometryCollection,
	}
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= KindPoint && k <= KindGeometryCollection
}

// String returns the GeoJSON / OGC name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind is the inverse of String. The match is case-insensitive so WKT
// tags ("MULTIPOLYGON") resolve as well.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if strings.EqualFold(kindNames[k], s) {
			return k, true
		}
	}
	return 0, false
}
