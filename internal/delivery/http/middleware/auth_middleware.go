package middleware

import (
	"errors"
	"strings"

	"isbuldum/internal/domain/user"
	"isbuldum/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey   = "user_id"
	CtxEmailKey    = "email"
	CtxIdentityKey = "identity"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Optional lets anonymous visitors through. A token that is present but
// unusable is still rejected.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return c.Next()
		}
		if err := m.authenticate(c, token); err != nil {
			return err
		}
		return c.Next()
	}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if err := m.authenticate(c, token); err != nil {
			return err
		}
		return c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c fiber.Ctx, token string) error {
	if m == nil || m.jwt == nil {
		return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	claims, err := m.jwt.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		}
		return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
	}

	c.Locals(CtxUserIDKey, claims.UserID)
	c.Locals(CtxEmailKey, claims.Email)
	c.Locals(CtxIdentityKey, &user.Identity{UserID: claims.UserID, Email: claims.Email})
	return nil
}

// IdentityFrom returns the signed-in visitor, or nil for anonymous requests.
func IdentityFrom(c fiber.Ctx) *user.Identity {
	id, _ := c.Locals(CtxIdentityKey).(*user.Identity)
	return id
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
