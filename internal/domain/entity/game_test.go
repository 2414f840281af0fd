package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludomarket/pkg/errors"
)

func TestGameMetadataValidate(t *testing.T) {
	tests := []struct {
		name    string
		descs   map[string]string
		wantErr bool
	}{
		{"valid pairs", map[string]string{"en": "A game", "ja": "ゲーム"}, false},
		{"no descriptions", nil, false},
		{"three letter key", map[string]string{"eng": "A game"}, true},
		{"one letter key", map[string]string{"e": "A game"}, true},
		{"empty key", map[string]string{"": "A game"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := GameMetadata{Name: "Test", ShortDescriptions: tt.descs}
			err := metadata.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.CodeMalformedLanguagePair))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGameLicenseLookups(t *testing.T) {
	game := NewGame("g1", GameMetadata{Name: "Test"}, false)
	game.Licenses = append(game.Licenses, License{ID: "l1", GameID: "g1", Name: "Standard"})

	license, err := game.LicenseByID("l1")
	require.NoError(t, err)
	assert.Equal(t, "Standard", license.Name)

	_, err = game.LicenseByID("missing")
	assert.True(t, errors.Is(err, errors.CodeLicenseNotFound))

	license, err = game.LicenseAt(0)
	require.NoError(t, err)
	assert.Equal(t, "l1", license.ID)

	_, err = game.LicenseAt(1)
	assert.True(t, errors.Is(err, errors.CodeIndexOutOfRange))

	_, err = game.LicenseAt(-1)
	assert.True(t, errors.Is(err, errors.CodeIndexOutOfRange))
}

func TestLicenseValidate(t *testing.T) {
	license := License{ID: "l1", DiscountRateBP: 10001}
	assert.True(t, errors.Is(license.Validate(), errors.CodeInvalidDiscountRate))

	license = License{ID: "l1", RoyaltyRateBP: 20000}
	assert.True(t, errors.Is(license.Validate(), errors.CodeInvalidRoyaltyRate))

	license = License{ID: "l1", ShortDescriptions: map[string]string{"eng": "x"}}
	assert.True(t, errors.Is(license.Validate(), errors.CodeMalformedLanguagePair))

	license = License{ID: "l1", DiscountRateBP: 10000, RoyaltyRateBP: 10000}
	assert.NoError(t, license.Validate())
}

func TestLicenseEffectivePrice(t *testing.T) {
	license := License{PublisherPriceUSD: 10000, DiscountRateBP: 2500}
	assert.Equal(t, uint64(7500), license.EffectivePriceUSD())
}
