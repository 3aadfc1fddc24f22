package sequence

import (
	"math"
	"testing"

	gofuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/rdeusser/boxes/order"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClone(t *testing.T) {
	src := []int{1, 2, 3}
	got := Clone(src)
	got[0] = 99

	assert.Equal(t, []int{1, 2, 3}, src)
	assert.NotNil(t, Clone[int](nil))
}

func TestWithout(t *testing.T) {
	testCases := []struct {
		testName string
		s        []int
		v        int
		want     []int
		changed  bool
	}{
		{"absent", []int{1, 2, 3}, 4, []int{1, 2, 3}, false},
		{"every occurrence", []int{5, 1, 5, 2, 5}, 5, []int{1, 2}, true},
		{"everything", []int{7, 7}, 7, []int{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			got, changed := Without(tc.s, tc.v)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.changed, changed)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 3))
	assert.Equal(t, 3, Clamp(99, 3))
	assert.Equal(t, 2, Clamp(2, 3))
	assert.Equal(t, 0, Clamp(0, 0))
}

func TestInBounds(t *testing.T) {
	assert.False(t, InBounds(-1, 3))
	assert.False(t, InBounds(3, 3))
	assert.True(t, InBounds(0, 3))
	assert.False(t, InBounds(0, 0))
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		testName string
		values   []float64
		want     []int
	}{
		{"nil", nil, []int{}},
		{"toward zero", []float64{1.9, -1.9, 2.0, -0.5}, []int{1, -1, 2, 0}},
		{"beyond int range", []float64{1e20, -1e20}, []int{math.MaxInt, math.MinInt}},
		{"infinities", []float64{math.Inf(1), math.Inf(-1)}, []int{math.MaxInt, math.MinInt}},
		{"nan", []float64{math.NaN()}, []int{0}},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, Truncate(tc.values))
		})
	}
}

func TestTexts(t *testing.T) {
	got := Texts([]any{"a", 1, nil, true, 2.5})
	assert.Equal(t, []string{"a", "1", "null", "true", "2.5"}, got)
}

func TestAbs(t *testing.T) {
	s := []int{-3, 0, 4, -1}
	Abs(s)
	assert.Equal(t, []int{3, 0, 4, 1}, s)
}

func TestSort(t *testing.T) {
	f := gofuzz.New().NilChance(0).NumElements(0, 50)

	for i := 0; i < 100; i++ {
		var s []int
		f.Fuzz(&s)

		asc := Clone(s)
		Sort(asc, order.Ascending)
		assert.True(t, IsSorted(asc, order.Ascending))

		desc := Clone(s)
		Sort(desc, order.Descending)
		assert.True(t, IsSorted(desc, order.Descending))

		assert.True(t, SameElements(asc, desc))
	}
}

func TestCountFold(t *testing.T) {
	assert.Equal(t, 3, CountFold([]string{"Go", "go", "GO", "gopher"}, "gO"))
	assert.Equal(t, 0, CountFold(nil, "go"))
}

func TestPositions(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4}, Positions([]int{7, 1, 7, 2, 7}, 7))
	assert.Equal(t, []int{}, Positions([]int{1, 2}, 3))
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{-4, 9}, Range([]int{3, 9, -4, 0}))
	assert.Equal(t, []int{}, Range([]int{}))
}

func TestHistogram(t *testing.T) {
	s := []int{1, 1, 2, 3, 3, 3}

	assert.Equal(t, map[int]int{1: 2, 2: 1, 3: 3}, Histogram(s))
	assert.Equal(t, 2, CountRepeated(s))
	assert.Equal(t, 0, CountRepeated([]int{1, 2, 3}))
}

func TestEqualOrdered(t *testing.T) {
	testCases := []struct {
		testName string
		s        []int
		other    []int
		want     bool
	}{
		{"nil other", []int{}, nil, false},
		{"both empty", []int{}, []int{}, true},
		{"same order", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"different order", []int{3, 1, 2}, []int{1, 2, 3}, false},
		{"different length", []int{1, 2}, []int{1, 2, 3}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, EqualOrdered(tc.s, tc.other))
		})
	}
}

func TestSameElements(t *testing.T) {
	testCases := []struct {
		testName string
		s        []int
		other    []int
		want     bool
	}{
		{"nil other", []int{}, nil, false},
		{"different order", []int{3, 1, 2}, []int{1, 2, 3}, true},
		{"different multiplicity", []int{1, 1, 2}, []int{1, 2, 2}, false},
		{"different length", []int{1, 2}, []int{1, 2, 2}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			s := Clone(tc.s)
			assert.Equal(t, tc.want, SameElements(s, tc.other))
			assert.Equal(t, tc.s, s, "arguments must not be reordered")
		})
	}
}
