package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "session"

	identityKey = "auth.identity"
)

// IdentityFrom returns the authenticated requester, or nil for anonymous
// requests.
func IdentityFrom(c echo.Context) *Identity {
	identity, _ := c.Get(identityKey).(*Identity)
	return identity
}

// SetIdentity stores the requester on the request context. Exposed for
// tests that bypass the cookie round-trip.
func SetIdentity(c echo.Context, identity *Identity) {
	c.Set(identityKey, identity)
}

// LoadIdentity resolves the session cookie into an Identity. Requests
// without a valid cookie pass through anonymously; the decision to gate
// belongs to RequireLogin.
func (m *Manager) LoadIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err == nil && cookie.Value != "" {
				if identity, err := m.ParseToken(cookie.Value); err == nil {
					SetIdentity(c, identity)
				}
			}
			return next(c)
		}
	}
}

// RequireLogin is the anonymous gate: authenticated requests pass through
// unchanged, anonymous ones are redirected to the login endpoint with the
// originally requested path in the next parameter. Pure decision, no side
// effects.
func RequireLogin(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IdentityFrom(c) == nil {
				return c.Redirect(http.StatusFound, loginPath+"?next="+c.Request().URL.Path)
			}
			return next(c)
		}
	}
}

// NewSessionCookie wraps a session token for the browser.
func NewSessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie clears the session on logout.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
