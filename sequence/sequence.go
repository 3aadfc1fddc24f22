// Package sequence holds the algorithms shared by the integer/string boxes.
// The functions never retain or alias their arguments unless stated.
package sequence

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/rdeusser/boxes/order"
	"github.com/rdeusser/boxes/safepool"
)

// Null is the textual form of an absent element.
const Null = "null"

var intPool = safepool.NewPool(func() *[]int {
	s := make([]int, 0, 64)
	return &s
})

// Clone returns a copy of s. The copy is never nil.
func Clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Without returns a new slice holding the elements of s not equal to v, and
// whether anything was dropped. When nothing matches s itself is returned.
func Without[T comparable](s []T, v T) ([]T, bool) {
	n := len(s) - Count(s, v)
	if n == len(s) {
		return s, false
	}

	out := make([]T, 0, n)
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}

	return out, true
}

// Clamp moves pos into [0, n].
func Clamp(pos, n int) int {
	switch {
	case pos < 0:
		return 0
	case pos > n:
		return n
	default:
		return pos
	}
}

// InBounds reports whether pos addresses an element of a sequence of length n.
func InBounds(pos, n int) bool {
	return pos >= 0 && pos < n
}

// Truncate converts every value to an int, discarding the fractional part.
// Values beyond the range of int saturate at its bounds and NaN becomes 0.
func Truncate(values []float64) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = truncate(v)
	}
	return out
}

func truncate(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= float64(math.MaxInt):
		return math.MaxInt
	case v <= float64(math.MinInt):
		return math.MinInt
	default:
		return int(v)
	}
}

// Text returns the textual form of v.
func Text(v any) string {
	if v == nil {
		return Null
	}
	return fmt.Sprint(v)
}

// Texts applies Text to every value, preserving order.
func Texts(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Text(v)
	}
	return out
}

// Abs replaces every element of s with its absolute value, in place.
func Abs[T constraints.Signed](s []T) {
	for i, v := range s {
		if v < 0 {
			s[i] = -v
		}
	}
}

// Sort sorts s in place in the direction o.
func Sort[T constraints.Ordered](s []T, o order.Order) {
	slices.Sort(s)

	if o == order.Descending {
		Reverse(s)
	}
}

// Reverse reverses s in place.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// IsSorted reports whether s is sorted in the direction o.
func IsSorted[T constraints.Ordered](s []T, o order.Order) bool {
	for i := 1; i < len(s); i++ {
		if order.Before(o, s[i], s[i-1]) {
			return false
		}
	}
	return true
}

// Count returns the number of elements equal to v.
func Count[T comparable](s []T, v T) int {
	n := 0
	for _, x := range s {
		if x == v {
			n++
		}
	}
	return n
}

// CountFold returns the number of elements equal to v under case folding.
func CountFold(s []string, v string) int {
	n := 0
	for _, x := range s {
		if strings.EqualFold(x, v) {
			n++
		}
	}
	return n
}

// Positions returns the ascending indexes of every element equal to v.
func Positions[T comparable](s []T, v T) []int {
	out := make([]int, 0, Count(s, v))
	for i, x := range s {
		if x == v {
			out = append(out, i)
		}
	}
	return out
}

// MinMax returns the smallest and largest element of s. ok is false when s is
// empty.
func MinMax[T constraints.Ordered](s []T) (min, max T, ok bool) {
	if len(s) == 0 {
		return min, max, false
	}

	min, max = s[0], s[0]
	for _, x := range s[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}

	return min, max, true
}

// Range returns [min, max] of s, or an empty slice.
func Range[T constraints.Ordered](s []T) []T {
	min, max, ok := MinMax(s)
	if !ok {
		return []T{}
	}
	return []T{min, max}
}

// Histogram maps every distinct element of s to its number of occurrences.
func Histogram[T comparable](s []T) map[T]int {
	h := make(map[T]int)
	for _, x := range s {
		h[x]++
	}
	return h
}

// CountRepeated returns how many distinct elements occur at least twice.
func CountRepeated[T comparable](s []T) int {
	n := 0
	for _, freq := range Histogram(s) {
		if freq >= 2 {
			n++
		}
	}
	return n
}

// EqualOrdered reports whether other has the same elements as s in the same
// order. A nil other is never equal.
func EqualOrdered[T comparable](s, other []T) bool {
	if other == nil {
		return false
	}
	return slices.Equal(s, other)
}

// SameElements reports whether s and other hold the same multiset of
// integers. A nil other is never equal.
func SameElements(s, other []int) bool {
	if other == nil || len(s) != len(other) {
		return false
	}

	a, b := intPool.Get(), intPool.Get()
	defer func() {
		*a, *b = (*a)[:0], (*b)[:0]
		intPool.Put(a)
		intPool.Put(b)
	}()

	*a = append((*a)[:0], s...)
	*b = append((*b)[:0], other...)

	slices.Sort(*a)
	slices.Sort(*b)

	return slices.Equal(*a, *b)
}
