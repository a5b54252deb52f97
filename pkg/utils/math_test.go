package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDecimal(t *testing.T) {
	assert.InDelta(t, 3.14, RoundDecimal(3.14159, 2), 1e-12)
	assert.InDelta(t, 3.15, RoundDecimal(3.145, 2), 1e-12)
	assert.InDelta(t, -3.15, RoundDecimal(-3.146, 2), 1e-12)
	assert.InDelta(t, 2.0, RoundDecimal(1.5, 0), 1e-12)
	assert.InDelta(t, 0.123457, RoundDecimal(0.123456789, 6), 1e-12)
}
