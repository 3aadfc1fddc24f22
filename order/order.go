package order

import "golang.org/x/exp/constraints"

//go:generate go run github.com/rdeusser/boxes/tools/gen-enum -type=Order

// Order is the direction in which a container sorts or exposes its elements.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Reverse returns the opposite direction.
func (i Order) Reverse() Order {
	if i == Descending {
		return Ascending
	}
	return Descending
}

// Before reports whether a sorts strictly before b in the order o.
func Before[T constraints.Ordered](o Order, a, b T) bool {
	if o == Descending {
		return a > b
	}
	return a < b
}
