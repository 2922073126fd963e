package traits

import "iter"

// Helpers for implementers backed by slices or by a count plus an accessor.

// At returns s[i], or false when i is outside [0, len(s)).
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}
	return s[i], true
}

// AtFunc is At with a conversion applied to the element.
func AtFunc[S ~[]E, E, V any](s S, i int, conv func(E) V) (V, bool) {
	if i < 0 || i >= len(s) {
		var zero V
		return zero, false
	}
	return conv(s[i]), true
}

// Map yields conv(e) for every element of s, in order.
func Map[S ~[]E, E, V any](s S, conv func(E) V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range s {
			if !yield(conv(e)) {
				return
			}
		}
	}
}

// Indexed yields at(0) … at(n-1). It suits representations with O(1)
// positional access but no slice, such as flat coordinate buffers.
func Indexed[V any](n int, at func(int) V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < n; i++ {
			if !yield(at(i)) {
				return
			}
		}
	}
}

// Count drains seq and returns how many items it yielded.
func Count[V any](seq iter.Seq[V]) int {
	var n int
	for range seq {
		n++
	}
	return n
}
