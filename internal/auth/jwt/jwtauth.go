package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/go-chi/jwtauth/v5"
)

const roleClaim = "role"

var ErrMissingRole = errors.New("token has no role claim")

// Claims are the parts of a verified token the API cares about.
type Claims struct {
	Subject string
	Role    entity.UserRole
}

func (c Claims) IsAdmin() bool {
	return c.Role == entity.UserRoleAdmin
}

func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (*Claims, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return nil, err
	}
	return claimsFromMap(t.Subject(), t.PrivateClaims())
}

// ClaimsFromMap reads claims out of the map jwtauth.FromContext returns.
func ClaimsFromMap(m map[string]interface{}) (*Claims, error) {
	sub, _ := m["sub"].(string)
	return claimsFromMap(sub, m)
}

func claimsFromMap(sub string, m map[string]interface{}) (*Claims, error) {
	raw, ok := m[roleClaim]
	if !ok {
		return nil, ErrMissingRole
	}
	role, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("role claim has type %T", raw)
	}
	return &Claims{
		Subject: sub,
		Role:    entity.UserRole(role),
	}, nil
}

// NewToken creates a JWT carrying the subject (user id or email) and the role.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string, role entity.UserRole) (string, error) {
	claims := map[string]interface{}{
		"exp":     time.Now().Add(ttl).Unix(),
		roleClaim: string(role),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
