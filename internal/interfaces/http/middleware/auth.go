package middleware

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
)

// Roles carried in the token. A gemeente token is additionally bound to one
// municipality; all its resource mutations are scoped to it.
const (
	RoleAdmin    = "admin"
	RoleGemeente = "gemeente"
)

const claimsKey = "auth_claims"

type Claims struct {
	Role         string `json:"role"`
	Municipality string `json:"municipality,omitempty"`
	jwt.RegisteredClaims
}

func secret() ([]byte, error) {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		// Fail fast: running without a secret would make every token forgeable.
		return nil, errors.New("JWT_SECRET is not defined in the environment")
	}
	return []byte(s), nil
}

// SignToken issues an HS256 token for a role, optionally bound to a
// municipality.
func SignToken(role, municipality string, ttl time.Duration) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Role:         role,
		Municipality: municipality,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func parseToken(tok string) (*Claims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}

	t, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// RequireRole guards a route group: a valid bearer token with the given role
// (admin passes everywhere).
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authenticatie vereist",
			})
		}

		claims, err := parseToken(strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "ongeldige of verlopen token",
			})
		}
		if claims.Role != role && claims.Role != RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "onvoldoende rechten",
			})
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFrom returns the verified claims for the current request, if any.
func ClaimsFrom(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals(claimsKey).(*Claims)
	return claims
}
