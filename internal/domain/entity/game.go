package entity

import (
	"time"

	"ludomarket/pkg/errors"
)

// NullAddress marks an unbound user slot on a license instance.
const NullAddress = ""

type GameMetadata struct {
	Name               string            `json:"name" firestore:"name"`
	CoverURL           string            `json:"cover_url,omitempty" firestore:"coverUrl,omitempty"`
	MediaURLs          []string          `json:"media_urls,omitempty" firestore:"mediaUrls,omitempty"`
	ShortDescriptions  map[string]string `json:"short_descriptions" firestore:"shortDescriptions"`
	Genre              string            `json:"genre" firestore:"genre"`
	Developer          string            `json:"developer" firestore:"developer"`
	Publisher          string            `json:"publisher" firestore:"publisher"`
	Languages          []string          `json:"languages,omitempty" firestore:"languages,omitempty"`
	Platforms          []string          `json:"platforms,omitempty" firestore:"platforms,omitempty"`
	SystemRequirements string            `json:"system_requirements,omitempty" firestore:"systemRequirements,omitempty"`
}

// Validate checks that every localized description is keyed by a
// two-letter language code.
func (m *GameMetadata) Validate() error {
	for key := range m.ShortDescriptions {
		if len(key) != 2 {
			return errors.MalformedLanguagePair(key)
		}
	}
	return nil
}

// Game is a catalog entry identified by a publisher-assigned key, unique
// within the store. It owns its licenses; licenses are immutable once
// created.
type Game struct {
	ID         string       `json:"id" firestore:"id"`
	Metadata   GameMetadata `json:"metadata" firestore:"metadata"`
	SaleLocked bool         `json:"sale_locked" firestore:"saleLocked"`
	Licenses   []License    `json:"licenses" firestore:"licenses"`
	CreatedAt  time.Time    `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time    `json:"updated_at" firestore:"updatedAt"`
}

func NewGame(id string, metadata GameMetadata, saleLocked bool) *Game {
	now := time.Now()
	return &Game{
		ID:         id,
		Metadata:   metadata,
		SaleLocked: saleLocked,
		Licenses:   []License{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (g *Game) LicenseByID(licenseID string) (*License, error) {
	for i := range g.Licenses {
		if g.Licenses[i].ID == licenseID {
			return &g.Licenses[i], nil
		}
	}
	return nil, errors.LicenseNotFound(licenseID)
}

// LicenseAt preserves positional lookup for callers that page through the
// license collection by index.
func (g *Game) LicenseAt(index int) (*License, error) {
	if index < 0 || index >= len(g.Licenses) {
		return nil, errors.IndexOutOfRange(index)
	}
	return &g.Licenses[index], nil
}
