package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(verifier *Verifier) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(verifier), func(c *fiber.Ctx) error {
		email, _ := c.Locals(LocalsEmail).(string)
		return c.SendString(email)
	})
	return app
}

func TestMiddlewareMissingToken(t *testing.T) {
	app := newProtectedApp(NewVerifier(testSecret, testIssuer))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMiddlewareInvalidToken(t *testing.T) {
	app := newProtectedApp(NewVerifier(testSecret, testIssuer))

	for _, header := range []string{"garbage", "Bearer garbage", "Bearer ", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "header %q", header)
	}
}

func TestMiddlewareExpiredToken(t *testing.T) {
	gen := NewGenerator(testSecret, testIssuer, -time.Minute)
	app := newProtectedApp(NewVerifier(testSecret, testIssuer))

	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMiddlewareValidToken(t *testing.T) {
	gen := NewGenerator(testSecret, testIssuer, time.Hour)
	app := newProtectedApp(NewVerifier(testSecret, testIssuer))
	user := testUser()

	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	// Both header shapes are accepted.
	for _, header := range []string{"Bearer " + token, token} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		body := make([]byte, 128)
		n, _ := res.Body.Read(body)
		assert.Equal(t, user.Email, string(body[:n]))
	}
}
