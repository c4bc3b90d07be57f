package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const CtxSessionIDKey = "session_id"

type SessionMiddleware struct {
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewSessionMiddleware(cookieName string, ttl time.Duration, secure bool) *SessionMiddleware {
	if cookieName == "" {
		cookieName = "isb_sid"
	}
	return &SessionMiddleware{cookieName: cookieName, ttl: ttl, secure: secure}
}

// Middleware gives every visitor a stable session id. Unknown or malformed
// cookies are replaced with a fresh id.
func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		sid := c.Cookies(m.cookieName)
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
		}

		cookie := &fiber.Cookie{
			Name:     m.cookieName,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			Secure:   m.secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		}
		if m.ttl > 0 {
			cookie.MaxAge = int(m.ttl / time.Second)
		}
		c.Cookie(cookie)
		c.Locals(CtxSessionIDKey, sid)

		return c.Next()
	}
}

func SessionID(c fiber.Ctx) string {
	sid, _ := c.Locals(CtxSessionIDKey).(string)
	return sid
}
