package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPosition(t *testing.T) {
	tests := []struct {
		name     string
		position int
		length   int
		expected bool
	}{
		{"first field", 1, 40, true},
		{"last field", 40, 40, true},
		{"zero", 0, 40, false},
		{"negative", -1, 40, false},
		{"past the end", 41, 40, false},
		{"empty board", 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidPosition(tt.position, tt.length))
		})
	}
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(2, 2, 8))
	assert.True(t, InRange(8, 2, 8))
	assert.False(t, InRange(1, 2, 8))
	assert.False(t, InRange(9, 2, 8))
}

func TestContainsInt(t *testing.T) {
	assert.True(t, ContainsInt([]int{0, 1, 2}, 1))
	assert.False(t, ContainsInt([]int{0, 1, 2}, 3))
	assert.False(t, ContainsInt(nil, 0))
}
