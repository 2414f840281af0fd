package entity

import (
	"time"

	"ludomarket/pkg/errors"
)

// License is a publisher-defined SKU: price, discount, royalty, resale
// permission and activation cap for one game. Immutable after creation.
type License struct {
	ID                string            `json:"id" firestore:"id"`
	GameID            string            `json:"game_id" firestore:"gameId"`
	Name              string            `json:"name" firestore:"name"`
	Thumbnail         string            `json:"thumbnail,omitempty" firestore:"thumbnail,omitempty"`
	ShortDescriptions map[string]string `json:"short_descriptions,omitempty" firestore:"shortDescriptions,omitempty"`
	PublisherPriceUSD uint64            `json:"publisher_price_usd" firestore:"publisherPriceUsd"`
	DiscountRateBP    uint64            `json:"discount_rate_bp" firestore:"discountRateBp"`
	RoyaltyRateBP     uint64            `json:"royalty_rate_bp" firestore:"royaltyRateBp"`
	PermitResale      bool              `json:"permit_resale" firestore:"permitResale"`
	LimitAuthCount    uint64            `json:"limit_auth_count" firestore:"limitAuthCount"`
	CreatedAt         time.Time         `json:"created_at" firestore:"createdAt"`
}

// Validate bounds the basis-point rates and the localized descriptions.
func (l *License) Validate() error {
	if l.DiscountRateBP > BasisPointScale {
		return errors.InvalidDiscountRate(l.DiscountRateBP)
	}
	if l.RoyaltyRateBP > BasisPointScale {
		return errors.InvalidRoyaltyRate(l.RoyaltyRateBP)
	}
	for key := range l.ShortDescriptions {
		if len(key) != 2 {
			return errors.MalformedLanguagePair(key)
		}
	}
	return nil
}

// EffectivePriceUSD is the publisher price after the floor-rounded discount.
func (l *License) EffectivePriceUSD() uint64 {
	return DiscountedPrice(l.PublisherPriceUSD, l.DiscountRateBP)
}
