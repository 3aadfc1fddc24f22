package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrder(t *testing.T) {
	testCases := []struct {
		testName string
		input    string
		want     Order
		wantErr  error
	}{
		{"ascending", "ascending", Ascending, nil},
		{"descending", "descending", Descending, nil},
		{"case matters", "Descending", Ascending, ErrInvalidOrder},
		{"unknown", "sideways", Ascending, ErrInvalidOrder},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			o, err := ParseOrder(tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, o)
		})
	}
}

func TestString(t *testing.T) {
	for _, o := range []Order{Ascending, Descending} {
		parsed, err := ParseOrder(o.String())
		assert.NoError(t, err)
		assert.Equal(t, o, parsed)
	}

	assert.Equal(t, "Order(7)", Order(7).String())
}

func TestReverse(t *testing.T) {
	assert.Equal(t, Descending, Ascending.Reverse())
	assert.Equal(t, Ascending, Descending.Reverse())
}

func TestBefore(t *testing.T) {
	assert.True(t, Before(Ascending, 1, 2))
	assert.False(t, Before(Ascending, 2, 2))
	assert.True(t, Before(Descending, "b", "a"))
	assert.False(t, Before(Descending, "a", "b"))
}
