package entity

import "time"

const (
	EventGameRegistered = "game.registered"
	EventLicenseCreated = "license.created"
	EventPurchased      = "license.purchased"
	EventListed         = "listing.created"
	EventResold         = "listing.resold"
	EventWithdrawn      = "pool.withdrawn"
)

// Event is a fire-and-forget domain notification. Events are emitted in
// operation order and never consumed by the core itself.
type Event struct {
	Type       string    `json:"type"`
	GameID     string    `json:"game_id,omitempty"`
	LicenseID  string    `json:"license_id,omitempty"`
	InstanceID string    `json:"instance_id,omitempty"`
	ListingID  string    `json:"listing_id,omitempty"`
	Pool       string    `json:"pool,omitempty"`
	Amount     uint64    `json:"amount,omitempty"`
	At         time.Time `json:"at"`
}

func NewEvent(eventType string) Event {
	return Event{Type: eventType, At: time.Now()}
}
