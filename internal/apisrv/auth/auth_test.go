package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MihaiKuro/asd/internal/auth/jwt"
	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "hehe"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(&Config{JWTSecret: jwtSecret, JWTTTL: "60m"})
	require.NoError(t, err)
	return s
}

func serve(s *Server, header string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(c.Subject))
	})
	req := httptest.NewRequest(http.MethodGet, "/api/admin/analytics", nil)
	if header != "" {
		req.Header.Set(AuthHeaderKey, header)
	}
	rr := httptest.NewRecorder()
	s.WithAuth(next).ServeHTTP(rr, req)
	return rr
}

func TestNew(t *testing.T) {
	_, err := New(&Config{})
	assert.Error(t, err)

	_, err = New(&Config{JWTSecret: "x", JWTTTL: "soon"})
	assert.Error(t, err)

	s, err := New(&Config{JWTSecret: "x"})
	require.NoError(t, err)
	assert.Equal(t, defaultTTL, s.jwtTTL)
}

func TestWithAuth(t *testing.T) {
	s := newTestServer(t)

	admin, err := s.IssueToken("admin@shop.test", entity.UserRoleAdmin)
	require.NoError(t, err)
	customer, err := s.IssueToken("customer@shop.test", entity.UserRoleCustomer)
	require.NoError(t, err)
	expired, err := jwt.NewToken(s.JwtAuth, -time.Minute, "admin@shop.test", entity.UserRoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"admin", fmt.Sprintf("Bearer %s", admin), http.StatusOK},
		{"lowercase scheme", fmt.Sprintf("bearer %s", admin), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no scheme", admin, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-token", http.StatusUnauthorized},
		{"expired", fmt.Sprintf("Bearer %s", expired), http.StatusUnauthorized},
		{"customer", fmt.Sprintf("Bearer %s", customer), http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(s, tt.header)
			assert.Equal(t, tt.code, rr.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, "admin@shop.test", rr.Body.String())
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["message"])
		})
	}
}
