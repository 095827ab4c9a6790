package spof

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccurrence_Allows(t *testing.T) {
	tests := []struct {
		occ   Occurrence
		allow []int
		deny  []int
	}{
		{Once, []int{1}, []int{0, 2}},
		{Optional, []int{0, 1}, []int{2}},
		{ZeroOrMore, []int{0, 1, 17}, nil},
		{OneOrMore, []int{1, 17}, []int{0}},
		{Exactly(2), []int{2}, []int{1, 3}},
		{Between(2, 4), []int{2, 3, 4}, []int{1, 5}},
	}
	for _, test := range tests {
		t.Run(test.occ.String(), func(t *testing.T) {
			for _, n := range test.allow {
				assert.True(t, test.occ.Allows(n), "n=%d", n)
			}
			for _, n := range test.deny {
				assert.False(t, test.occ.Allows(n), "n=%d", n)
			}
		})
	}
}

func TestOccurrence_zero(t *testing.T) {
	var occ Occurrence
	assert.Equal(t, Once, occ)
}

func TestOccurrence_Condition(t *testing.T) {
	assert.Equal(t, "n == 1", Once.Condition())
	assert.Equal(t, "n <= 1", Optional.Condition())
	assert.Equal(t, "n >= 0", ZeroOrMore.Condition())
	assert.Equal(t, "n >= 1", OneOrMore.Condition())
	assert.Equal(t, "n == 4", Exactly(4).Condition())
	assert.Equal(t, "n >= 1 && n <= 3", Between(1, 3).Condition())
	assert.Equal(t, "between 1 and 3", Between(1, 3).String())
}

func TestOccurrence_validate(t *testing.T) {
	assert.NoError(t, Exactly(0).validate())
	assert.Error(t, Exactly(-1).validate())
	assert.Error(t, Between(3, 2).validate())
}
