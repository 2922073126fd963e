package traits

// Point is a zero-dimensional location.
type Point[T Coord] interface {
	// X component of this point
	X() T
	// Y component of this point
	Y() T
}

// PointBuilder is a Point that can build values of its own type.
//
// FromXY is called on the zero value of P and must not depend on the receiver.
// It is total: any two scalars produce a point.
type PointBuilder[T Coord, P any] interface {
	Point[T]
	FromXY(x, y T) P
}

// FromXY builds a P from two scalars.
func FromXY[P PointBuilder[T, P], T Coord](x, y T) P {
	var zero P
	return zero.FromXY(x, y)
}
