package jwt_test

import (
	"context"
	"testing"
	"time"

	golangjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termin/config"
	"termin/infras/jwt"
)

const testSecret = "test-access-secret"

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = testSecret
	cfg.JWT.RefreshSecret = "test-refresh-secret"

	return jwt.New(cfg)
}

func signToken(t *testing.T, tokenType jwt.TokenType, expiresAt time.Time, secret string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.Claims{
		UserID: "admin-1",
		Email:  "admin@example.com",
		Role:   "admin",
		Type:   tokenType,
		RegisteredClaims: golangjwt.RegisteredClaims{
			ExpiresAt: golangjwt.NewNumericDate(expiresAt),
			IssuedAt:  golangjwt.NewNumericDate(now),
			Subject:   "admin-1",
		},
	}

	signed, err := golangjwt.NewWithClaims(golangjwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestValidateToken(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	t.Run("valid access token", func(t *testing.T) {
		token := signToken(t, jwt.AccessToken, time.Now().Add(time.Hour), testSecret)

		claims, err := svc.ValidateToken(ctx, token, jwt.AccessToken)

		require.NoError(t, err)
		assert.Equal(t, "admin-1", claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.AccessToken, time.Now().Add(-time.Hour), testSecret)

		_, err := svc.ValidateToken(ctx, token, jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, jwt.AccessToken, time.Now().Add(time.Hour), "other-secret")

		_, err := svc.ValidateToken(ctx, token, jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token type mismatch", func(t *testing.T) {
		token := signToken(t, jwt.RefreshToken, time.Now().Add(time.Hour), testSecret)

		_, err := svc.ValidateToken(ctx, token, jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "not-a-token", jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}
