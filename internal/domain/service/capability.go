package service

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"ludomarket/pkg/errors"
)

type CapabilityKind string

const (
	CapabilityPlatform  CapabilityKind = "platform"
	CapabilityPublisher CapabilityKind = "publisher"
)

type capabilityClaims struct {
	Kind  string `json:"kind"`
	Bound string `json:"bound"`
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// CapabilityAuthority issues and validates bearer capability tokens.
// A token is a signed claim of "kind over bound target"; there is no
// issuance table, possession of a validly signed token is the proof.
// Tokens never expire and are never revoked.
type CapabilityAuthority struct {
	secret []byte
}

func NewCapabilityAuthority(secret string) *CapabilityAuthority {
	return &CapabilityAuthority{secret: []byte(secret)}
}

// Issue mints a fresh capability bound to boundID. The nonce keeps two
// tokens over the same target distinct.
func (a *CapabilityAuthority) Issue(kind CapabilityKind, boundID string) (string, error) {
	claims := capabilityClaims{
		Kind:  string(kind),
		Bound: boundID,
		Nonce: uuid.New().String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", errors.Internal("Failed to sign capability token", err)
	}
	return signed, nil
}

// Authorize validates that tokenString is a well-signed capability of the
// requested kind whose bound identifier equals targetID. Authorization is
// equality against the token's bound field, never an owner lookup.
func (a *CapabilityAuthority) Authorize(tokenString string, kind CapabilityKind, targetID string) error {
	claims := &capabilityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid || claims.Kind != string(kind) || claims.Bound != targetID {
		return a.denied(kind)
	}
	return nil
}

func (a *CapabilityAuthority) denied(kind CapabilityKind) error {
	if kind == CapabilityPublisher {
		return errors.NotPublisher()
	}
	return errors.NotAuthorized()
}
