package service

// PricingOracle converts USD-equivalent units into platform token units.
// The core treats conversion as pure and synchronous.
type PricingOracle interface {
	UsdToToken(usd uint64) uint64
}

// FixedRatePricing is the placeholder oracle: a constant scale factor.
// A production deployment swaps in an implementation backed by a
// periodically refreshed external rate.
type FixedRatePricing struct {
	scale uint64
}

func NewFixedRatePricing(scale uint64) *FixedRatePricing {
	return &FixedRatePricing{scale: scale}
}

func (p *FixedRatePricing) UsdToToken(usd uint64) uint64 {
	return usd * p.scale
}
