// Package auth verifies Pi Network access tokens.
package auth

import (
	"crypto"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

var ErrInvalidToken = errors.New("invalid access token")

// Identity is what a verified access token asserts about the caller.
type Identity struct {
	UserID   string
	Username string
}

type piTokenClaims struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// PiTokenVerifier verifies Pi Network access tokens. With a configured public
// key the JWT signature is checked; without one, tokens are accepted unverified
// only when explicitly allowed, which is a development-only mode.
type PiTokenVerifier struct {
	publicKey       crypto.PublicKey
	allowUnverified bool
}

type PiTokenVerifierConfig struct {
	PublicKeyPEM    string
	AllowUnverified bool
}

func NewPiTokenVerifier(config PiTokenVerifierConfig) (*PiTokenVerifier, error) {
	if config.PublicKeyPEM == "" {
		if !config.AllowUnverified {
			return nil, errors.New("no token public key configured and unverified tokens are not allowed")
		}

		log.Warn().Msg("Accepting UNVERIFIED access tokens, do not run this in production")

		return &PiTokenVerifier{allowUnverified: true}, nil
	}

	publicKey, err := parsePublicKey(config.PublicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token public key: %w", err)
	}

	return &PiTokenVerifier{publicKey: publicKey}, nil
}

func parsePublicKey(pemData string) (crypto.PublicKey, error) {
	raw := []byte(pemData)

	if key, err := jwt.ParseRSAPublicKeyFromPEM(raw); err == nil {
		return key, nil
	}

	if key, err := jwt.ParseECPublicKeyFromPEM(raw); err == nil {
		return key, nil
	}

	return jwt.ParseEdPublicKeyFromPEM(raw)
}

// Verify validates the token and returns the asserted identity. A token with
// no uid claim is invalid even when the signature checks out.
func (v *PiTokenVerifier) Verify(accessToken string) (Identity, error) {
	claims := &piTokenClaims{}

	var err error
	if v.publicKey != nil {
		_, err = jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (any, error) {
			return v.publicKey, nil
		})
	} else {
		_, _, err = jwt.NewParser().ParseUnverified(accessToken, claims)
	}

	if err != nil {
		log.Debug().Err(err).Msg("Token verification failed")

		return Identity{}, fmt.Errorf("%w: %s", ErrInvalidToken, err.Error())
	}

	if claims.UID == "" {
		return Identity{}, fmt.Errorf("%w: missing uid claim", ErrInvalidToken)
	}

	return Identity{
		UserID:   claims.UID,
		Username: claims.Username,
	}, nil
}
