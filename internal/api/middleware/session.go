package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const sessionCookie = "xo_session"

// SessionID returns the caller's cart session identifier, minting a cookie
// on first contact. The X-Session-ID header takes precedence so non-browser
// clients can pin a session explicitly.
func SessionID(w http.ResponseWriter, r *http.Request) string {

	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}

	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}
