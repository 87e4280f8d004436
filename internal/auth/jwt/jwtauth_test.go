package jwt

import (
	"testing"
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, time.Hour, "admin@shop.test", entity.UserRoleAdmin)
	require.NoError(t, err)

	claims, err := VerifyToken(jwtAuth, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin@shop.test", claims.Subject)
	assert.Equal(t, entity.UserRoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
}

func TestTokenCustomer(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, time.Hour, "", entity.UserRoleCustomer)
	require.NoError(t, err)

	claims, err := VerifyToken(jwtAuth, tok)
	require.NoError(t, err)
	assert.Empty(t, claims.Subject)
	assert.False(t, claims.IsAdmin())
}

func TestTokenExpired(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, -time.Hour, "admin", entity.UserRoleAdmin)
	require.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	tok, err := NewToken(jwtauth.New("HS256", []byte("secret"), nil), time.Hour, "admin", entity.UserRoleAdmin)
	require.NoError(t, err)

	_, err = VerifyToken(jwtauth.New("HS256", []byte("other"), nil), tok)
	assert.Error(t, err)
}

func TestTokenWithoutRole(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	_, tok, err := jwtAuth.Encode(map[string]interface{}{"sub": "someone"})
	require.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.ErrorIs(t, err, ErrMissingRole)
}

func TestClaimsFromMap(t *testing.T) {
	claims, err := ClaimsFromMap(map[string]interface{}{"sub": "7", "role": "admin"})
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.True(t, claims.IsAdmin())

	_, err = ClaimsFromMap(map[string]interface{}{"role": 1})
	assert.Error(t, err)
}
