package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"°C", "°F", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("type_name", "TypeName"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("abcd", "abce"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
}

func TestClosest(t *testing.T) {
	t.Parallel()

	known := []string{"Constructors", "Methods", "Properties", "Fields"}

	got, ok := Closest("method", known)
	assert.True(t, ok)
	assert.Equal(t, "Methods", got)

	got, ok = Closest("feilds", known)
	assert.True(t, ok)
	assert.Equal(t, "Fields", got)

	_, ok = Closest("events", known)
	assert.False(t, ok)

	_, ok = Closest("anything", nil)
	assert.False(t, ok)
}
