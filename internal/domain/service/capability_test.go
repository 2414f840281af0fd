package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludomarket/pkg/errors"
)

func TestCapabilityIssueAndAuthorize(t *testing.T) {
	authority := NewCapabilityAuthority("test-secret")

	token, err := authority.Issue(CapabilityPublisher, "game-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, authority.Authorize(token, CapabilityPublisher, "game-1"))
}

func TestCapabilityTokensAreDistinct(t *testing.T) {
	authority := NewCapabilityAuthority("test-secret")

	first, err := authority.Issue(CapabilityPublisher, "game-1")
	require.NoError(t, err)
	second, err := authority.Issue(CapabilityPublisher, "game-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCapabilityAuthorizeRejects(t *testing.T) {
	authority := NewCapabilityAuthority("test-secret")

	publisher, err := authority.Issue(CapabilityPublisher, "game-1")
	require.NoError(t, err)
	platform, err := authority.Issue(CapabilityPlatform, "marketplace")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		kind   CapabilityKind
		target string
		code   string
	}{
		{"wrong target", publisher, CapabilityPublisher, "game-2", errors.CodeNotPublisher},
		{"wrong kind", platform, CapabilityPublisher, "game-1", errors.CodeNotPublisher},
		{"publisher token is not platform", publisher, CapabilityPlatform, "game-1", errors.CodeNotAuthorized},
		{"garbage token", "not-a-token", CapabilityPublisher, "game-1", errors.CodeNotPublisher},
		{"empty token", "", CapabilityPlatform, "marketplace", errors.CodeNotAuthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authority.Authorize(tt.token, tt.kind, tt.target)
			assert.True(t, errors.Is(err, tt.code))
		})
	}
}

func TestCapabilityForeignSecretRejected(t *testing.T) {
	authority := NewCapabilityAuthority("test-secret")
	forger := NewCapabilityAuthority("other-secret")

	forged, err := forger.Issue(CapabilityPublisher, "game-1")
	require.NoError(t, err)

	err = authority.Authorize(forged, CapabilityPublisher, "game-1")
	assert.True(t, errors.Is(err, errors.CodeNotPublisher))
}
