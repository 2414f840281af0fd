package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedRatePricing(t *testing.T) {
	pricing := NewFixedRatePricing(100)

	assert.Equal(t, uint64(0), pricing.UsdToToken(0))
	assert.Equal(t, uint64(100), pricing.UsdToToken(1))
	assert.Equal(t, uint64(1000000), pricing.UsdToToken(10000))
}
