package schema

import (
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	assert.Equal(1.56, Round2(1.556))
	assert.Equal(2.35, Round2(2.345678))
	assert.Equal(10.0, Round2(10.0))
	assert.Equal(-1.23, Round2(-1.234))
}

func TestRound3(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	assert.Equal(0.001, Round3(0.0012))
	assert.Equal(1.234, Round3(1.2344))
	assert.Equal(5.0, Round3(5.0))
}

func TestDecimalPlaces(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	assert.Equal(0, decimalPlaces(10))
	assert.Equal(1, decimalPlaces(10.5))
	assert.Equal(2, decimalPlaces(10.55))
	assert.Equal(3, decimalPlaces(10.555))
	// trailing zeros do not count in the shortest representation
	assert.Equal(1, decimalPlaces(10.10))
}

func TestIsWholeNumber(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	assert.True(isWholeNumber(0))
	assert.True(isWholeNumber(42))
	assert.True(isWholeNumber(-7))
	assert.False(isWholeNumber(0.5))
	assert.False(isWholeNumber(-7.2))
}
