package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModWrapsNegatives(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Mod(13, 12))
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-24, 12))
	assert.Equal(10, Mod(-14, 12))
	assert.Equal(int8(3), Mod(int8(-9), int8(12)))
}

func TestContainsFold(t *testing.T) {
	assert := assert.New(t)
	assert.True(ContainsFold("Let It Be", "it b"))
	assert.True(ContainsFold("anything", ""))
	assert.False(ContainsFold("Yesterday", "today"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty())
}
