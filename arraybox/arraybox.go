// Package arraybox manages an integer sequence and a string sequence stored in
// exact-length arrays. Every change in length allocates a new array and copies
// the surviving elements across; nothing is ever appended in place.
package arraybox

import (
	"go.uber.org/zap"

	"github.com/rdeusser/boxes/order"
	"github.com/rdeusser/boxes/random"
	"github.com/rdeusser/boxes/sequence"
)

// Ensure Box satisfies sequence.Box at compile-time.
var _ sequence.Box = (*Box)(nil)

// Box is not safe for concurrent use.
type Box struct {
	ints   []int
	strs   []string
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

// New returns a Box with both sequences empty.
func New(opts ...Option) *Box {
	b := &Box{
		ints: []int{},
		strs: []string{},
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

	b.logger = b.logger.Named("arraybox")

	return b
}

func (b *Box) Ints() []int {
	return sequence.Clone(b.ints)
}

func (b *Box) Strings() []string {
	return sequence.Clone(b.strs)
}

func (b *Box) IntCount() int {
	return len(b.ints)
}

func (b *Box) StringCount() int {
	return len(b.strs)
}

func (b *Box) AppendInt(v int) {
	n := len(b.ints)
	grown := make([]int, n+1)
	copy(grown, b.ints)
	grown[n] = v
	b.ints = grown
}

func (b *Box) AppendString(v string) {
	n := len(b.strs)
	grown := make([]string, n+1)
	copy(grown, b.strs)
	grown[n] = v
	b.strs = grown
}

func (b *Box) RemoveAllInt(v int) {
	if shrunk, ok := sequence.Without(b.ints, v); ok {
		b.ints = shrunk
	}
}

func (b *Box) RemoveAllString(v string) {
	if shrunk, ok := sequence.Without(b.strs, v); ok {
		b.strs = shrunk
	}
}

func (b *Box) InsertIntAt(v, pos int) {
	n := len(b.ints)
	pos = sequence.Clamp(pos, n)

	grown := make([]int, n+1)
	copy(grown, b.ints[:pos])
	grown[pos] = v
	copy(grown[pos+1:], b.ints[pos:])
	b.ints = grown
}

func (b *Box) RemoveIntAt(pos int) {
	n := len(b.ints)
	if !sequence.InBounds(pos, n) {
		b.logger.Debug("ignoring removal outside of sequence", zap.Int("position", pos), zap.Int("length", n))
		return
	}

	shrunk := make([]int, n-1)
	copy(shrunk, b.ints[:pos])
	copy(shrunk[pos:], b.ints[pos+1:])
	b.ints = shrunk
}

func (b *Box) ResetIntsFrom(values []float64) {
	b.ints = sequence.Truncate(values)
	b.logger.Debug("reset integers", zap.Int("length", len(b.ints)))
}

func (b *Box) ResetStringsFrom(values []any) {
	b.strs = sequence.Texts(values)
	b.logger.Debug("reset strings", zap.Int("length", len(b.strs)))
}

func (b *Box) AbsInts() {
	sequence.Abs(b.ints)
}

// SortInts sorts the integers from smallest to largest.
func (b *Box) SortInts() {
	sequence.Sort(b.ints, order.Ascending)
}

func (b *Box) SortStrings() {
	sequence.Sort(b.strs, order.Ascending)
}

func (b *Box) CountInt(v int) int {
	return sequence.Count(b.ints, v)
}

func (b *Box) CountString(v string) int {
	return sequence.CountFold(b.strs, v)
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
	b.ints = random.Fill(b.rand, count, lo, hi)
	b.logger.Debug("regenerated integers", zap.Int("count", len(b.ints)), zap.Int("lo", lo), zap.Int("hi", hi))
}
