package traits

import "golang.org/x/exp/constraints"

// Coord is the constraint for coordinate scalars.
//
// Every type in the set is an ordered, copyable value with arithmetic, so
// points can be read from any number of goroutines without synchronization.
type Coord interface {
	constraints.Integer | constraints.Float
}
