package entity

import "time"

// ResellerListing wraps exactly one license instance offered on the
// secondary market. Listing an instance consumes it from direct ownership;
// the wrapped instance is extracted again when the listing sells.
type ResellerListing struct {
	ID           string          `json:"id" firestore:"id"`
	Instance     LicenseInstance `json:"instance" firestore:"instance"`
	ResellerName string          `json:"reseller_name" firestore:"resellerName"`
	Description  string          `json:"description,omitempty" firestore:"description,omitempty"`
	AskPriceUSD  uint64          `json:"ask_price_usd" firestore:"askPriceUsd"`
	CreatedAt    time.Time       `json:"created_at" firestore:"createdAt"`
}

func NewResellerListing(id string, instance *LicenseInstance, resellerName, description string, askPriceUSD uint64) *ResellerListing {
	return &ResellerListing{
		ID:           id,
		Instance:     *instance,
		ResellerName: resellerName,
		Description:  description,
		AskPriceUSD:  askPriceUSD,
		CreatedAt:    time.Now(),
	}
}

// Seller is the payout beneficiary: the owner the instance had when it
// was listed.
func (l *ResellerListing) Seller() string {
	return l.Instance.Owner
}
