package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func runMiddleware(authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/ingest", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	AuthRequired()(c)
	return w, c
}

// TestAuthRequired_MissingBearerToken はBearerトークンがない場合やプレフィックスが不正な場合に401が返されることを検証します。
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "test-secret")

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, c := runMiddleware(tt.authHeader)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted(), "expected request to be aborted")
		})
	}
}

// TestAuthRequired_MissingJWTSecret はJWT_SECRET環境変数が未設定の場合に500が返されることを検証します。
func TestAuthRequired_MissingJWTSecret(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "")

	w, c := runMiddleware("Bearer sometoken")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, c.IsAborted())
}

// TestAuthRequired_InvalidToken は不正なトークン（改ざん・期限切れ等）で401が返されることを検証します。
func TestAuthRequired_InvalidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-invalid"
	t.Setenv(EnvKeyJWTSecret, testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", createToken(t, jwt.SigningMethodHS256, "wrong-secret", adminClaims(time.Hour))},
		{"expired token", createToken(t, jwt.SigningMethodHS256, testSecret, adminClaims(-time.Hour))},
		{"missing exp", createToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "ops", "scope": ScopeAdmin})},
		{"HS512 token", createToken(t, jwt.SigningMethodHS512, testSecret, adminClaims(time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, c := runMiddleware("Bearer " + tt.token)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

// TestAuthRequired_InsufficientScope は管理者スコープを持たないトークンで403が返されることを検証します。
func TestAuthRequired_InsufficientScope(t *testing.T) {
	const testSecret = "test-secret-key-for-scope"
	t.Setenv(EnvKeyJWTSecret, testSecret)

	claims := jwt.MapClaims{"sub": "viewer", "scope": "read", "exp": time.Now().Add(time.Hour).Unix()}
	w, c := runMiddleware("Bearer " + createToken(t, jwt.SigningMethodHS256, testSecret, claims))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}

// TestAuthRequired_ValidToken は発行したトークンでリクエストが通過し、subjectが設定されることを検証します。
func TestAuthRequired_ValidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-valid"
	t.Setenv(EnvKeyJWTSecret, testSecret)

	tokenStr, err := NewGenerator(testSecret, time.Hour).GenerateToken("nightly-ingest")
	assert.NoError(t, err)

	w, c := runMiddleware("Bearer " + tokenStr)

	assert.False(t, c.IsAborted(), "expected request not to be aborted, response: %s", w.Body.String())
	assert.Equal(t, "nightly-ingest", c.GetString(ContextSubject))
}

// TestAuthRequired_InvalidSigningMethod はnoneアルゴリズム（未署名）のトークンが拒否されることを検証します。
func TestAuthRequired_InvalidSigningMethod(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "test-secret-key-for-signing")

	token := jwt.NewWithClaims(jwt.SigningMethodNone, adminClaims(time.Hour))
	tokenStr, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	w, _ := runMiddleware("Bearer " + tokenStr)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func adminClaims(expiration time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "ops",
		"scope": ScopeAdmin,
		"exp":   time.Now().Add(expiration).Unix(),
		"iat":   time.Now().Unix(),
	}
}

// createToken はテスト用に指定されたアルゴリズムとシークレットで署名済みJWTトークンを生成します。
func createToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}
