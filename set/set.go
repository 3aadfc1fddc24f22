// Package set provides a set of unique strings that is always exposed in a
// defined order: ascending byte order by default.
package set

import (
	"fmt"
	"strings"

	"github.com/scylladb/go-set/strset"
	"go.uber.org/zap"

	"github.com/rdeusser/boxes/order"
	"github.com/rdeusser/boxes/sequence"
)

// Set is not safe for concurrent use.
type Set struct {
	m      *strset.Set
	order  order.Order
	logger *zap.Logger
}

// Ensure Set satisfies set.Interface at compile-time.
var _ Interface = (*Set)(nil)

type Option func(*Set)

// WithOrder sets the order the set exposes its items in.
func WithOrder(o order.Order) Option {
	return func(s *Set) {
		s.order = o
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Set) {
		s.logger = logger
	}
}

// New returns an empty set.
func New(opts ...Option) *Set {
	s := &Set{
		m:     strset.New(),
		order: order.Ascending,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	s.logger = s.logger.Named("set")

	return s
}

// NewWithOrderName returns an empty set ordered by the named order, either
// "ascending" or "descending".
func NewWithOrderName(name string, opts ...Option) (*Set, error) {
	o, err := order.ParseOrder(name)
	if err != nil {
		return nil, err
	}

	return New(append(opts, WithOrder(o))...), nil
}

// Of returns an ascending set initialized with the provided items.
func Of(items ...string) *Set {
	s := New()
	s.m.Add(items...)
	return s
}

// Add an item to the set. Adding an existing item changes nothing.
func (s *Set) Add(item string) bool {
	before := s.m.Size()
	s.m.Add(item)

	return before != s.m.Size()
}

// RemoveExact removes item if it is present.
func (s *Set) RemoveExact(item string) bool {
	before := s.m.Size()
	s.m.Remove(item)

	return before != s.m.Size()
}

// RemoveCaseInsensitive removes only the first match, in the set's order, of
// item under case folding.
func (s *Set) RemoveCaseInsensitive(item string) bool {
	for _, member := range s.Items() {
		if strings.EqualFold(member, item) {
			s.m.Remove(member)
			return true
		}
	}

	return false
}

// RemoveFirst removes the first item in the set's order.
func (s *Set) RemoveFirst() bool {
	first, ok := s.First()
	if !ok {
		return false
	}

	s.m.Remove(first)

	return true
}

// ResetFrom clears the set and adds the textual form of every value.
// Duplicates collapse.
func (s *Set) ResetFrom(values []any) {
	s.m.Clear()
	s.m.Add(sequence.Texts(values)...)

	s.logger.Debug("reset set",
		zap.Int("values", len(values)),
		zap.Int("size", s.m.Size()),
		zap.Stringer("order", s.order),
	)
}

// Contains determines whether item is in the set.
func (s *Set) Contains(item string) bool {
	return s.m.Has(item)
}

// ContainsAll determines whether every item is in the set.
func (s *Set) ContainsAll(items []string) bool {
	if len(items) == 0 {
		return true
	}

	return s.m.Has(items...)
}

// Size returns the number of items in the set.
func (s *Set) Size() int {
	return s.m.Size()
}

// First returns the first item in the set's order.
func (s *Set) First() (string, bool) {
	return s.edge(s.order)
}

// Last returns the last item in the set's order.
func (s *Set) Last() (string, bool) {
	return s.edge(s.order.Reverse())
}

// Items returns the items in the set's order.
func (s *Set) Items() []string {
	return s.sorted(s.order)
}

// AsAscendingList returns the items from smallest to largest.
func (s *Set) AsAscendingList() []string {
	return s.sorted(order.Ascending)
}

// AsDescendingList returns the items from largest to smallest.
func (s *Set) AsDescendingList() []string {
	return s.sorted(order.Descending)
}

// FromInclusive returns every item that does not come before from in the
// set's order, including from itself when it is a member.
func (s *Set) FromInclusive(from string) []string {
	tail := make([]string, 0)

	for _, item := range s.Items() {
		if !order.Before(s.order, item, from) {
			tail = append(tail, item)
		}
	}

	return tail
}

// ToUppercase replaces every item with its upper-cased form, so the set may
// shrink.
func (s *Set) ToUppercase() {
	upper := strset.New()

	s.m.Each(func(item string) bool {
		upper.Add(strings.ToUpper(item))
		return true
	})

	if merged := s.m.Size() - upper.Size(); merged > 0 {
		s.logger.Debug("upper-casing merged items", zap.Int("merged", merged))
	}

	s.m = upper
}

// ToDescendingView returns a new set with the same items whose order runs from
// largest to smallest. Changes to either set are not seen by the other.
func (s *Set) ToDescendingView() Interface {
	return &Set{
		m:      s.m.Copy(),
		order:  order.Descending,
		logger: s.logger,
	}
}

// String provides a string representation of the set.
func (s *Set) String() string {
	return fmt.Sprintf("Set{%s}", strings.Join(s.Items(), ", "))
}

// edge returns the item that sorts first in the order o.
func (s *Set) edge(o order.Order) (string, bool) {
	min, max, ok := sequence.MinMax(s.m.List())
	if o == order.Descending {
		return max, ok
	}

	return min, ok
}

func (s *Set) sorted(o order.Order) []string {
	items := s.m.List()
	sequence.Sort(items, o)

	return items
}
