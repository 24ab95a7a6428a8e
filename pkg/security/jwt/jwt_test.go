package jwt

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/identity/pkg/auth"
)

const (
	testSecret = "test-secret"
	testIssuer = "identity-service-test"
)

func testUser() auth.User {
	return auth.User{ID: uuid.New(), Email: "a@x.com", Username: "a"}
}

func TestRoundTrip(t *testing.T) {
	gen := NewGenerator(testSecret, testIssuer, time.Hour)
	verifier := NewVerifier(testSecret, testIssuer)
	user := testUser()

	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestExpired(t *testing.T) {
	gen := NewGenerator(testSecret, testIssuer, -time.Minute)
	verifier := NewVerifier(testSecret, testIssuer)

	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestTamperedPayload(t *testing.T) {
	gen := NewGenerator(testSecret, testIssuer, time.Hour)
	verifier := NewVerifier(testSecret, testIssuer)

	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	// Swap the payload segment; the signature no longer matches.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	other, err := gen.Generate(context.Background(), auth.User{ID: uuid.New(), Email: "b@x.com"})
	require.NoError(t, err)
	otherParts := strings.Split(other, ".")
	tampered := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = verifier.Verify(tampered)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestWrongSecret(t *testing.T) {
	gen := NewGenerator("other-secret", testIssuer, time.Hour)
	verifier := NewVerifier(testSecret, testIssuer)

	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestWrongIssuer(t *testing.T) {
	gen := NewGenerator(testSecret, "someone-else", time.Hour)
	verifier := NewVerifier(testSecret, testIssuer)

	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestMalformed(t *testing.T) {
	verifier := NewVerifier(testSecret, testIssuer)

	for _, tokenStr := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := verifier.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", tokenStr)
	}
}
