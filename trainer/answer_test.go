package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	assert.Equal(t, "", Display(nil))
	assert.Equal(t, "X", Display([]string{"X"}))
	assert.Equal(t, "D B A C", Display([]string{"D", "B", "A", "C"}))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"a b c", "a b c"},
		{"  a   B c ", "a b c"},
		{"A\tB\n C", "a b c"},
		{"ABC", "abc"},
		{"d  b a   c", "d b a c"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "not idempotent")
		})
	}

	assert.Equal(t, Normalize("a b c"), Normalize("  a   B c "))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"exact", "D B A C", true},
		{"lowercase", "d b a c", true},
		{"spacing", "  D   B a C\t", true},
		{"wrong order", "D A B C", false},
		{"missing", "D B A", false},
		{"no spaces", "DBAC", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Check(InOrder, tt.answer, "D B A C")
			assert.Equal(t, tt.correct, r.Correct)
			assert.Equal(t, InOrder, r.Order)
			assert.Equal(t, tt.answer, r.Answer)
			assert.Equal(t, "D B A C", r.Expected)
		})
	}
}
