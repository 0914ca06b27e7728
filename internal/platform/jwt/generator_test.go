package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseClaims(t *testing.T, tokenStr, secret string) jwt.MapClaims {
	t.Helper()

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, "HS256", token.Method.Alg())
	return claims
}

// TestGenerator_GenerateToken は生成されたJWTトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		subject    string
		expiration time.Duration
	}{
		{"operator", "ops", time.Hour},
		{"cron job", "nightly-ingest", 24 * time.Hour},
		{"empty subject", "", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", tt.expiration)
			tokenStr, err := gen.GenerateToken(tt.subject)
			require.NoError(t, err)
			require.NotEmpty(t, tokenStr)

			claims := parseClaims(t, tokenStr, "test-secret")
			assert.Equal(t, tt.subject, claims["sub"])
			assert.Equal(t, ScopeAdmin, claims["scope"])
			assert.Contains(t, claims, "iat")
			assert.Contains(t, claims, "exp")
		})
	}
}

// TestGenerator_GenerateToken_Expiration はトークンのexp・iatクレームが固定時刻から計算されることを検証します。
func TestGenerator_GenerateToken_Expiration(t *testing.T) {
	t.Parallel()

	fixed := time.Now().Truncate(time.Second)
	gen := NewGenerator("test-secret", 2*time.Hour)
	gen.now = func() time.Time { return fixed }

	tokenStr, err := gen.GenerateToken("ops")
	require.NoError(t, err)

	claims := parseClaims(t, tokenStr, "test-secret")
	assert.Equal(t, float64(fixed.Unix()), claims["iat"])
	assert.Equal(t, float64(fixed.Add(2*time.Hour).Unix()), claims["exp"])
}

// TestGenerator_GenerateToken_EmptySecret は署名鍵が空の場合にエラーとなることを検証します。
func TestGenerator_GenerateToken_EmptySecret(t *testing.T) {
	t.Parallel()

	tokenStr, err := NewGenerator("", time.Hour).GenerateToken("ops")

	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Empty(t, tokenStr)
}

// TestGenerator_GenerateToken_DifferentSubjectsProduceDifferentTokens は異なるsubjectに対して異なるトークンが生成されることを検証します。
func TestGenerator_GenerateToken_DifferentSubjectsProduceDifferentTokens(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	token1, err := gen.GenerateToken("ops")
	require.NoError(t, err)
	token2, err := gen.GenerateToken("cron")
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)
}
