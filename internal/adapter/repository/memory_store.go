package repository

import (
	"sync"

	"ludomarket/internal/domain/entity"
)

// MemoryStore backs the in-memory repositories. One mutex serializes every
// mutation across all repositories sharing the store, so each operation
// observes a consistent snapshot. Used for local runs and tests.
type MemoryStore struct {
	mu           sync.RWMutex
	games        map[string]*entity.Game
	gameOrder    []string
	instances    map[string]*entity.LicenseInstance
	listings     map[string]*entity.ResellerListing
	listingOrder []string
	pools        map[string]*entity.Pool
	wallets      map[string]*entity.Wallet
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games:     make(map[string]*entity.Game),
		instances: make(map[string]*entity.LicenseInstance),
		listings:  make(map[string]*entity.ResellerListing),
		pools:     make(map[string]*entity.Pool),
		wallets:   make(map[string]*entity.Wallet),
	}
}

func cloneGame(g *entity.Game) *entity.Game {
	clone := *g
	clone.Licenses = make([]entity.License, len(g.Licenses))
	for i, l := range g.Licenses {
		clone.Licenses[i] = cloneLicense(l)
	}
	clone.Metadata.ShortDescriptions = cloneStringMap(g.Metadata.ShortDescriptions)
	clone.Metadata.MediaURLs = append([]string(nil), g.Metadata.MediaURLs...)
	clone.Metadata.Languages = append([]string(nil), g.Metadata.Languages...)
	clone.Metadata.Platforms = append([]string(nil), g.Metadata.Platforms...)
	return &clone
}

func cloneLicense(l entity.License) entity.License {
	l.ShortDescriptions = cloneStringMap(l.ShortDescriptions)
	return l
}

func cloneInstance(i *entity.LicenseInstance) *entity.LicenseInstance {
	clone := *i
	return &clone
}

func cloneListing(l *entity.ResellerListing) *entity.ResellerListing {
	clone := *l
	return &clone
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func paginate(total, limit, offset int) (int, int) {
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return offset, end
}
