// Package listbox manages an integer list and a string list. The integers live
// in a growable slice with amortized appends; the strings live in a doubly
// linked list. Unlike arraybox, SortInts orders the integers from largest to
// smallest.
package listbox

import (
	"container/list"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/rdeusser/boxes/order"
	"github.com/rdeusser/boxes/random"
	"github.com/rdeusser/boxes/sequence"
)

// Ensure Box satisfies sequence.Box at compile-time.
var _ sequence.Box = (*Box)(nil)

// Box is not safe for concurrent use.
type Box struct {
	ints   []int
	strs   *list.List
	rand   random.Source
	logger *zap.Logger
}

type Option func(*Box)

// WithLogger sets the logger used to report ignored and bulk operations.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Box) {
		b.logger = logger
	}
}

// WithRand sets the source RegenerateInts draws from.
func WithRand(src random.Source) Option {
	return func(b *Box) {
		b.rand = src
	}
}

// New returns a Box with both lists empty.
func New(opts ...Option) *Box {
	b := &Box{
		ints: make([]int, 0),
		strs: list.New(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = zap.NewNop()
	}

	if b.rand == nil {
		b.rand = random.New()
	}

	b.logger = b.logger.Named("listbox")

	return b
}

func (b *Box) Ints() []int {
	return sequence.Clone(b.ints)
}

// IntArray returns the integers as a plain array copy.
func (b *Box) IntArray() []int {
	return sequence.Clone(b.ints)
}

func (b *Box) Strings() []string {
	out := make([]string, 0, b.strs.Len())
	for e := b.strs.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(string))
	}
	return out
}

func (b *Box) IntCount() int {
	return len(b.ints)
}

func (b *Box) StringCount() int {
	return b.strs.Len()
}

func (b *Box) AppendInt(v int) {
	b.ints = append(b.ints, v)
}

func (b *Box) AppendString(v string) {
	b.strs.PushBack(v)
}

func (b *Box) RemoveAllInt(v int) {
	kept := b.ints[:0]
	for _, x := range b.ints {
		if x != v {
			kept = append(kept, x)
		}
	}
	b.ints = kept
}

func (b *Box) RemoveAllString(v string) {
	for e := b.strs.Front(); e != nil; {
		next := e.Next()
		if e.Value.(string) == v {
			b.strs.Remove(e)
		}
		e = next
	}
}

func (b *Box) InsertIntAt(v, pos int) {
	b.ints = slices.Insert(b.ints, sequence.Clamp(pos, len(b.ints)), v)
}

func (b *Box) RemoveIntAt(pos int) {
	if !sequence.InBounds(pos, len(b.ints)) {
		b.logger.Debug("ignoring removal outside of list", zap.Int("position", pos), zap.Int("length", len(b.ints)))
		return
	}

	b.ints = slices.Delete(b.ints, pos, pos+1)
}

func (b *Box) ResetIntsFrom(values []float64) {
	b.ints = append(b.ints[:0], sequence.Truncate(values)...)
	b.logger.Debug("reset integers", zap.Int("length", len(b.ints)))
}

func (b *Box) ResetStringsFrom(values []any) {
	b.strs.Init()
	for _, v := range values {
		b.strs.PushBack(sequence.Text(v))
	}
	b.logger.Debug("reset strings", zap.Int("length", b.strs.Len()))
}

func (b *Box) AbsInts() {
	sequence.Abs(b.ints)
}

// SortInts sorts the integers from largest to smallest.
func (b *Box) SortInts() {
	sequence.Sort(b.ints, order.Descending)
}

// SortStrings sorts the strings in ascending order, rewriting the list
// elements in place.
func (b *Box) SortStrings() {
	sorted := b.Strings()
	sequence.Sort(sorted, order.Ascending)

	i := 0
	for e := b.strs.Front(); e != nil; e = e.Next() {
		e.Value = sorted[i]
		i++
	}
}

func (b *Box) CountInt(v int) int {
	return sequence.Count(b.ints, v)
}

func (b *Box) CountString(v string) int {
	return sequence.CountFold(b.Strings(), v)
}

func (b *Box) IntPositions(v int) []int {
	return sequence.Positions(b.ints, v)
}

func (b *Box) IntRange() []int {
	return sequence.Range(b.ints)
}

func (b *Box) Histogram() map[int]int {
	return sequence.Histogram(b.ints)
}

func (b *Box) CountRepeatedInts() int {
	return sequence.CountRepeated(b.ints)
}

func (b *Box) EqualsOrdered(other []int) bool {
	return sequence.EqualOrdered(b.ints, other)
}

func (b *Box) SameElements(other []int) bool {
	return sequence.SameElements(b.ints, other)
}

func (b *Box) RegenerateInts(count, lo, hi int) {
	b.ints = b.ints[:0]
	for i := 0; i < count; i++ {
		b.ints = append(b.ints, random.Between(b.rand, lo, hi))
	}
	b.logger.Debug("regenerated integers", zap.Int("count", len(b.ints)), zap.Int("lo", lo), zap.Int("hi", hi))
}
