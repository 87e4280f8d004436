package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/MihaiKuro/asd/internal/apisrv"
	"github.com/MihaiKuro/asd/internal/auth/jwt"
	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
)

const (
	// AuthHeaderKey is header key to match auth token
	AuthHeaderKey = "Authorization"

	defaultTTL = 24 * time.Hour
)

type ctxKey struct{}

// Server verifies admin tokens.
type Server struct {
	JwtAuth *jwtauth.JWTAuth
	jwtTTL  time.Duration
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	JWTTTL    string `mapstructure:"jwt_ttl"`
}

// New creates a new auth server.
func New(c *Config) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, errors.New("auth: jwt secret is empty")
	}
	ttl := defaultTTL
	if c.JWTTTL != "" {
		var err error
		ttl, err = time.ParseDuration(c.JWTTTL)
		if err != nil {
			return nil, fmt.Errorf("auth: bad jwt ttl %q: %w", c.JWTTTL, err)
		}
	}
	return &Server{
		JwtAuth: jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:  ttl,
	}, nil
}

// IssueToken signs a token for subject with the configured ttl.
func (s *Server) IssueToken(subject string, role entity.UserRole) (string, error) {
	return jwt.NewToken(s.JwtAuth, s.jwtTTL, subject, role)
}

// WithAuth middleware lets through requests carrying a valid admin token.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromHeader(r)
		if token == "" {
			render.Render(w, r, apisrv.ErrUnauthorized(errors.New("missing bearer token")))
			return
		}
		claims, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			render.Render(w, r, apisrv.ErrUnauthorized(fmt.Errorf("invalid token: %w", err)))
			return
		}
		if !claims.IsAdmin() {
			slog.Default().WarnContext(r.Context(), "non admin token rejected",
				slog.String("sub", claims.Subject),
				slog.String("role", string(claims.Role)),
			)
			render.Render(w, r, apisrv.ErrForbidden(fmt.Errorf("role %q is not allowed", claims.Role)))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
	})
}

// ClaimsFromContext returns the claims WithAuth stored for the request.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*jwt.Claims)
	return c, ok
}

func tokenFromHeader(r *http.Request) string {
	h := r.Header.Get(AuthHeaderKey)
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
