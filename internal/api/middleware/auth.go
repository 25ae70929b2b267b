package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appErrors "github.com/xomerch/storefront/internal/errors"
	"github.com/xomerch/storefront/internal/models"
	"github.com/xomerch/storefront/internal/utils/response"
)

type userContextKey string

const UserContextKey = userContextKey("user")

// AuthMiddleware gates checkout behind the external identity provider. The
// storefront only verifies tokens; it never issues them.
type AuthMiddleware struct {
	jwtKey   []byte
	loginURL string
}

func NewAuthMiddleware(jwtKey []byte, loginURL string) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey, loginURL: loginURL}
}

// Authenticate verifies the bearer token. Unauthenticated browser requests
// are redirected to the login flow with the originating path preserved, so
// the user lands back where they started after signing in.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			m.redirectToLogin(w, r)

			return
		}

		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, appErrors.UnauthorizedError("Invalid authorization format"))

			return
		}

		tokenString := tokenParts[1]

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))

				return nil, appErrors.BadRequestError("unexpected signing method")
			}

			return m.jwtKey, nil
		})
		if err != nil {
			logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
			m.redirectToLogin(w, r)

			return
		}

		if !token.Valid {
			logger.Warn("Invalid token")
			m.redirectToLogin(w, r)

			return
		}

		if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
			logger.Warn("Expired token", slog.String("userId", claims.UserID))
			m.redirectToLogin(w, r)

			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)

		requestScopedLogger := logger.With(slog.String("userId", claims.UserID))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// redirectToLogin remembers the originating path in the returnTo query
// parameter. API clients (Accept: application/json) get a 401 carrying the
// same login URL instead of a redirect.
func (m *AuthMiddleware) redirectToLogin(w http.ResponseWriter, r *http.Request) {

	loginURL := m.loginURL + "?returnTo=" + url.QueryEscape(r.URL.RequestURI())

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		appErr := appErrors.UnauthorizedError("Authentication required").WithDetail(loginURL)
		response.Error(w, appErr)

		return
	}

	http.Redirect(w, r, loginURL, http.StatusFound)
}

// ClaimsFromContext returns the authenticated user's claims, if any.
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)

	return claims, ok
}
