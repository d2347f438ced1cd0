package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, key ed25519.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func publicKeyPEM(t *testing.T, key ed25519.PublicKey) string {
	t.Helper()

	der, err := x509.MarshalPKIXPublicKey(key)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func TestPiTokenVerifier_VerifiedMode(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	verifier, err := NewPiTokenVerifier(PiTokenVerifierConfig{
		PublicKeyPEM: publicKeyPEM(t, publicKey),
	})
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		token := signedToken(t, privateKey, jwt.MapClaims{"uid": "pi_user_1", "username": "alice"})

		identity, err := verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "pi_user_1", identity.UserID)
		assert.Equal(t, "alice", identity.Username)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		_, otherKey, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		token := signedToken(t, otherKey, jwt.MapClaims{"uid": "pi_user_1"})

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing uid claim", func(t *testing.T) {
		token := signedToken(t, privateKey, jwt.MapClaims{"username": "alice"})

		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := verifier.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPiTokenVerifier_UnverifiedMode(t *testing.T) {
	verifier, err := NewPiTokenVerifier(PiTokenVerifierConfig{AllowUnverified: true})
	require.NoError(t, err)

	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	token := signedToken(t, privateKey, jwt.MapClaims{"uid": "pi_user_2", "username": "bob"})

	identity, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "pi_user_2", identity.UserID)
}

func TestNewPiTokenVerifier_RequiresKeyOrOptIn(t *testing.T) {
	_, err := NewPiTokenVerifier(PiTokenVerifierConfig{})
	assert.Error(t, err)

	_, err = NewPiTokenVerifier(PiTokenVerifierConfig{PublicKeyPEM: "not a pem"})
	assert.Error(t, err)
}
