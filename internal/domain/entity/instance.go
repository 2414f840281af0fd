package entity

import (
	"time"

	"ludomarket/pkg/errors"
)

// LicenseInstance is one issued right-to-use, minted at purchase time.
// Name and Thumbnail are snapshots of the license at mint time and never
// change afterwards; activation checks always consult the live license.
type LicenseInstance struct {
	ID        string    `json:"id" firestore:"id"`
	GameID    string    `json:"game_id" firestore:"gameId"`
	LicenseID string    `json:"license_id" firestore:"licenseId"`
	Name      string    `json:"name" firestore:"name"`
	Thumbnail string    `json:"thumbnail,omitempty" firestore:"thumbnail,omitempty"`
	AuthCount uint64    `json:"auth_count" firestore:"authCount"`
	Owner     string    `json:"owner" firestore:"owner"`
	User      string    `json:"user" firestore:"user"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func MintLicenseInstance(id string, license *License, owner string) *LicenseInstance {
	now := time.Now()
	return &LicenseInstance{
		ID:        id,
		GameID:    license.GameID,
		LicenseID: license.ID,
		Name:      license.Name,
		Thumbnail: license.Thumbnail,
		AuthCount: 0,
		Owner:     owner,
		User:      NullAddress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Authenticate binds caller as the current user of the instance.
// Re-authenticating the already-bound user is a no-op and consumes no
// quota; binding a new user spends one activation against the live
// license's cap.
func (i *LicenseInstance) Authenticate(license *License, caller string) error {
	if caller != i.Owner {
		return errors.NotOwner()
	}
	if i.User == caller {
		return nil
	}
	if license.LimitAuthCount <= i.AuthCount {
		return errors.AuthLimitExceeded()
	}
	i.AuthCount++
	i.User = caller
	i.UpdatedAt = time.Now()
	return nil
}

// Exhausted reports whether every activation has been spent.
func (i *LicenseInstance) Exhausted(license *License) bool {
	return license.LimitAuthCount <= i.AuthCount
}
