package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]int{3, -1, 7, 2})
	assert.Equal(t, -1, lo)
	assert.Equal(t, 7, hi)

	lo, hi = MinMax([]int{4})
	assert.Equal(t, 4, lo)
	assert.Equal(t, 4, hi)
}
