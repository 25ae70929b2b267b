package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xomerch/storefront/internal/api/middleware"
	"github.com/xomerch/storefront/internal/models"
)

const loginURL = "https://id.example.com/login"

var jwtKey = []byte("test-signing-key")

func signedToken(t *testing.T, claims *models.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
	require.NoError(t, err)

	return token
}

func validClaims() *models.Claims {
	return &models.Claims{
		UserID: "user-1",
		Email:  "abel@example.com",
		Name:   "Abel Tesfaye",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthenticate(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(jwtKey, loginURL)

	t.Run("Success - Valid Token Reaches Handler With Claims", func(t *testing.T) {
		// Arrange
		var gotClaims *models.Claims

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotClaims, _ = middleware.ClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, validClaims()))
		rec := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, "user-1", gotClaims.UserID)
	})

	t.Run("Failure - Missing Header Redirects Browser With returnTo", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout?step=shipping", nil)
		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t,
			loginURL+"?returnTo=%2Fapi%2Fv1%2Fcheckout%3Fstep%3Dshipping",
			rec.Header().Get("Location"))
	})

	t.Run("Failure - Missing Header Gives JSON Clients 401", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), loginURL)
	})

	t.Run("Failure - Malformed Header Format", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil)
		req.Header.Set("Authorization", "Token abc123")
		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - Expired Token Redirects To Login", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		})

		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, claims))
		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("Failure - Token Signed With Another Key", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		})

		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).
			SignedString([]byte("attacker-key"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
	})
}

func TestSessionID(t *testing.T) {
	t.Run("Header Takes Precedence", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("X-Session-ID", "pinned")
		req.AddCookie(&http.Cookie{Name: "xo_session", Value: "from-cookie"})
		rec := httptest.NewRecorder()

		assert.Equal(t, "pinned", middleware.SessionID(rec, req))
	})

	t.Run("Cookie Reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.AddCookie(&http.Cookie{Name: "xo_session", Value: "from-cookie"})
		rec := httptest.NewRecorder()

		assert.Equal(t, "from-cookie", middleware.SessionID(rec, req))
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("Mints And Sets Cookie On First Contact", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		rec := httptest.NewRecorder()

		id := middleware.SessionID(rec, req)

		assert.NotEmpty(t, id)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "xo_session", cookies[0].Name)
		assert.Equal(t, id, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})
}
