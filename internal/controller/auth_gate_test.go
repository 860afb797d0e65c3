package controller

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The middleware rejects before any handler runs, so the controllers can
// be wired with nil services here.
func newGatedApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewAdoptionController(nil).RegisterRoutes(api)
	NewProductController(nil).RegisterRoutes(api)
	return app
}

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"email":   "gate@example.com",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdoptionRouteRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "gate-test-secret")
	app := newGatedApp()

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "wrong secret", header: "Bearer " + signToken(t, "some-other-secret", "customer")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/api/adoptions", strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			res, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
		})
	}
}

func TestProductWritesRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "gate-test-secret")
	app := newGatedApp()

	customerToken := signToken(t, "gate-test-secret", "customer")

	for _, route := range []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/products"},
		{fiber.MethodPut, "/api/products/" + uuid.New().String()},
		{fiber.MethodDelete, "/api/products/" + uuid.New().String()},
	} {
		t.Run(route.method, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+customerToken)

			res, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
		})
	}

	// Anonymous writes never reach the role check
	req := httptest.NewRequest(fiber.MethodPost, "/api/products", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestNonHMACTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "gate-test-secret")
	app := newGatedApp()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/products", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokenStr)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
