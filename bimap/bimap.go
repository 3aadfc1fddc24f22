// Package bimap provides a string map whose key is always the reversal of its
// value. Values are unique, so in practice keys are too.
package bimap

import (
	"strings"

	"github.com/scylladb/go-set/strset"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/rdeusser/boxes/order"
	"github.com/rdeusser/boxes/sequence"
)

// Map is not safe for concurrent use.
type Map struct {
	forward  map[string]string // key → value
	backward map[string]string // value → key
	logger   *zap.Logger
}

type Option func(*Map)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Map) {
		m.logger = logger
	}
}

// New returns an empty Map.
func New(opts ...Option) *Map {
	m := &Map{
		forward:  make(map[string]string),
		backward: make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = zap.NewNop()
	}

	m.logger = m.logger.Named("bimap")

	return m
}

// Reverse returns s with its code points in reverse order.
func Reverse(s string) string {
	r := []rune(s)
	sequence.Reverse(r)
	return string(r)
}

// Add inserts the entry (Reverse(value), value) unless value is already
// stored.
func (m *Map) Add(value string) bool {
	if _, exists := m.backward[value]; exists {
		return false
	}

	m.put(Reverse(value), value)

	return true
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (string, bool) {
	value, exists := m.forward[key]
	return value, exists
}

// RemoveByKey removes the entry stored under key.
func (m *Map) RemoveByKey(key string) bool {
	value, exists := m.forward[key]
	if !exists {
		return false
	}

	delete(m.forward, key)
	delete(m.backward, value)

	return true
}

// RemoveByValue removes the entry holding value.
func (m *Map) RemoveByValue(value string) bool {
	key, exists := m.backward[value]
	if !exists {
		return false
	}

	delete(m.forward, key)
	delete(m.backward, value)

	return true
}

// ResetFrom clears the map and adds the textual form of every value in order.
// The first occurrence of a duplicate wins.
func (m *Map) ResetFrom(values []any) {
	m.forward = make(map[string]string, len(values))
	m.backward = make(map[string]string, len(values))

	for _, v := range values {
		m.Add(sequence.Text(v))
	}

	m.logger.Debug("reset map", zap.Int("values", len(values)), zap.Int("size", len(m.forward)))
}

// UppercaseAllKeys rewrites every key to upper case and keeps the values.
// Keys are visited in ascending order, so when two keys collide the entry with
// the greater original key is the one kept.
func (m *Map) UppercaseAllKeys() {
	keys := maps.Keys(m.forward)
	slices.Sort(keys)

	old := m.forward
	m.forward = make(map[string]string, len(old))
	m.backward = make(map[string]string, len(old))

	for _, key := range keys {
		m.put(strings.ToUpper(key), old[key])
	}
}

// Size returns the number of entries.
func (m *Map) Size() int {
	return len(m.forward)
}

// Keys returns the keys in no particular order.
func (m *Map) Keys() []string {
	return maps.Keys(m.forward)
}

// Values returns the values in no particular order.
func (m *Map) Values() []string {
	return maps.Values(m.forward)
}

// ValuesAscending returns the values from smallest to largest.
func (m *Map) ValuesAscending() []string {
	values := m.Values()
	sequence.Sort(values, order.Ascending)
	return values
}

// KeysDescending returns the keys from largest to smallest.
func (m *Map) KeysDescending() []string {
	keys := m.Keys()
	sequence.Sort(keys, order.Descending)
	return keys
}

// KeysUppercased returns a copy of every key in upper case, in no particular
// order. The map itself is left untouched.
func (m *Map) KeysUppercased() []string {
	out := make([]string, 0, len(m.forward))
	for key := range m.forward {
		out = append(out, strings.ToUpper(key))
	}
	return out
}

// MinValue returns the smallest value. The bool is false when the map is
// empty.
func (m *Map) MinValue() (string, bool) {
	min, _, ok := sequence.MinMax(m.Values())
	return min, ok
}

// MaxValue returns the largest value. The bool is false when the map is
// empty.
func (m *Map) MaxValue() (string, bool) {
	_, max, ok := sequence.MinMax(m.Values())
	return max, ok
}

// ValuesMatch determines whether the distinct values of the map are exactly
// the distinct items of other. Order and repetition are irrelevant; a nil
// other is treated as empty.
func (m *Map) ValuesMatch(other []string) bool {
	return strset.New(m.Values()...).IsEqual(strset.New(other...))
}

// put stores the entry and keeps both directions consistent when key is
// already taken by another value.
func (m *Map) put(key, value string) {
	if prev, exists := m.forward[key]; exists && prev != value {
		delete(m.backward, prev)
		m.logger.Debug("key collision, replacing entry",
			zap.String("key", key),
			zap.String("replaced", prev),
			zap.String("value", value),
		)
	}

	m.forward[key] = value
	m.backward[value] = key
}
