package traits

import "fmt"

// Geometry is a value that classifies into exactly one of the seven kinds.
//
// AsType is pure: calling it again on an unmodified value reports the same
// kind and the same pointer.
type Geometry[P, L, Y, MP, ML, MY, GC any] interface {
	AsType() GeometryType[P, L, Y, MP, ML, MY, GC]
}

// GeometryType is the tagged view returned by classification. It carries a
// Kind and a pointer to the matched concrete value, which stays owned by the
// classified geometry.
//
// Values are built by a Family. The zero value is unclassified: Kind reports
// 0 and every accessor reports false.
type GeometryType[P, L, Y, MP, ML, MY, GC any] struct {
	kind Kind
	ref  any // always a pointer, so storing it does not allocate
}

// Kind returns the discriminant.
func (t GeometryType[P, L, Y, MP, ML, MY, GC]) Kind() Kind { return t.kind }

// Valid reports whether t came from classification.
func (t GeometryType[P, L, Y, MP, ML, MY, GC]) Valid() bool { return t.kind.Valid() }

func (t GeometryType[P, L, Y, MP, ML, MY, GC]) Point() (*P, bool) {
	return variant[P](t.ref, t.kind, KindPoint)
}

func (t GeometryType[P, L, Y, MP, ML, MY, GC]) LineString() (*L, bool) {
	return variant[L](t.ref, t.kind, KindLineString)
}

func (t GeometryType[P, L, Y, MP, ML, MY, GC]) Polygon() (*Y, bool) {
	return variant[Y](t.ref, t.kind, KindPolygon)
}

func (t GeometryType[P, L, Y, MP, ML, MY, GC]) MultiPoint() (*MP, bool) {
	return variant[MP](t.ref, t.kind, KindMultiPoint)
}

func (t GeometryType[P, L, Y, MP, ML, MY, GC]) MultiLineString() (*ML, bool) {
	return variant[ML](t.ref, t.kind, KindMultiLineString)
}

func (t GeometryType[P, L, Y, MP, ML, MY, GC]) MultiPolygon() (*MY, bool) {
	return variant[MY](t.ref, t.kind, KindMultiPolygon)
}

func (t GeometryType[P, L, Y, MP, ML, MY, GC]) GeometryCollection() (*GC, bool) {
	return variant[GC](t.ref, t.kind, KindGeometryCollection)
}

// Ref returns the matched value as an untyped pointer, or nil for the zero
// GeometryType. Two classifications of the same value return equal refs.
func (t GeometryType[P, L, Y, MP, ML, MY, GC]) Ref() any { return t.ref }

// variant checks the tag before the type: two kinds may share one concrete
// type (a LineString and a MultiPoint commonly do).
func variant[V any](ref any, have, want Kind) (*V, bool) {
	if have != want {
		return nil, false
	}
	v, ok := ref.(*V)
	return v, ok
}

// Visitor handles every kind. Adding a kind to the model breaks every
// Visitor at compile time, which is the point.
type Visitor[R, P, L, Y, MP, ML, MY, GC any] interface {
	VisitPoint(*P) R
	VisitLineString(*L) R
	VisitPolygon(*Y) R
	VisitMultiPoint(*MP) R
	VisitMultiLineString(*ML) R
	VisitMultiPolygon(*MY) R
	VisitGeometryCollection(*GC) R
}

// Visit dispatches t to the matching Visitor method. It panics with
// Unclassified for the zero GeometryType.
func Visit[R, P, L, Y, MP, ML, MY, GC any](t GeometryType[P, L, Y, MP, ML, MY, GC], v Visitor[R, P, L, Y, MP, ML, MY, GC]) R {
	switch t.kind {
	case KindPoint:
		return v.VisitPoint(t.ref.(*P))
	case KindLineString:
		return v.VisitLineString(t.ref.(*L))
	case KindPolygon:
		return v.VisitPolygon(t.ref.(*Y))
	case KindMultiPoint:
		return v.VisitMultiPoint(t.ref.(*MP))
	case KindMultiLineString:
		return v.VisitMultiLineString(t.ref.(*ML))
	case KindMultiPolygon:
		return v.VisitMultiPolygon(t.ref.(*MY))
	case KindGeometryCollection:
		return v.VisitGeometryCollection(t.ref.(*GC))
	}
	panic(Unclassified(t.kind))
}

// Unclassified is the panic value for a kind outside the closed set. It is
// raised by Visit and by exhaustive switches in this module's default cases.
type Unclassified Kind

func (u Unclassified) Error() string {
	return fmt.Sprintf("traits: unclassified geometry (%s)", Kind(u))
}
