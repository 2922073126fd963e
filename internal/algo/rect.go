// Package algo holds geometry algorithms written once against package traits.
// Every function takes the representation's Family first so that callers
// never spell type arguments.
package algo

import "geotraits/traits"

// Rect is an axis-aligned bounding box.
type Rect[T traits.Coord] struct {
	MinX, MinY, MaxX, MaxY T
}

// Around returns the degenerate Rect holding the single point (x, y).
func Around[T traits.Coord](x, y T) Rect[T] {
	return Rect[T]{MinX: x, MinY: y, MaxX: x, MaxY: y}
}

// Extend returns r grown to include (x, y).
func (r Rect[T]) Extend(x, y T) Rect[T] {
	r.MinX, r.MaxX = min(r.MinX, x), max(r.MaxX, x)
	r.MinY, r.MaxY = min(r.MinY, y), max(r.MaxY, y)
	return r
}

// Contains reports whether (x, y) lies in r, edges included.
func (r Rect[T]) Contains(x, y T) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Valid reports whether r has a non-zero width and height.
func (r Rect[T]) Valid() bool { return r.MaxX > r.MinX && r.MaxY > r.MinY }

func (r Rect[T]) Width() T  { return r.MaxX - r.MinX }
func (r Rect[T]) Height() T { return r.MaxY - r.MinY }
