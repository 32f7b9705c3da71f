package app

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"rentora/config"
	"rentora/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated identity attached to a request after the
// bearer token checks out.
type Principal struct {
	ID    string
	Email string
	Role  string
}

// SignToken issues the bearer credential carried by every protected call.
func SignToken(cfg config.Config, u *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(cfg.TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
}

func parseToken(cfg config.Config, raw string) (Principal, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Principal{}, err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return Principal{}, errors.New("invalid token")
	}
	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if id == "" {
		return Principal{}, errors.New("token missing subject")
	}
	return Principal{ID: id, Email: email, Role: role}, nil
}

// AuthRequired verifies the Authorization bearer token and stores the
// principal in the gin context.
func AuthRequired(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"message": "missing bearer token"})
			return
		}
		p, err := parseToken(cfg, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"message": "invalid or expired token"})
			return
		}
		c.Set("userID", p.ID)
		c.Set("email", p.Email)
		c.Set("role", p.Role)
		c.Next()
	}
}

// AdminOnly gates superadmin routes. Must run after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if r, _ := role.(string); r != models.RoleSuperadmin {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"message": "forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentPrincipal reads back what AuthRequired stored.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return Principal{}, false
	}
	id, _ := v.(string)
	if id == "" {
		return Principal{}, false
	}
	return Principal{
		ID:    id,
		Email: c.GetString("email"),
		Role:  c.GetString("role"),
	}, true
}
