package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba"

func newProtectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", UserFromToken(secret), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"userId": ctx.GetString("userId")})
	})
	return router
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestUserFromToken_ValidToken(t *testing.T) {
	router := newProtectedRouter(testSecret)
	signed := signToken(t, testSecret, jwt.MapClaims{"id": float64(7)})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":"7"}`, rec.Body.String())
}

func TestUserFromToken_MissingToken(t *testing.T) {
	router := newProtectedRouter(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Authentication token is required"}`, rec.Body.String())
}

func TestUserFromToken_WrongSecret(t *testing.T) {
	router := newProtectedRouter(testSecret)
	signed := signToken(t, "otro-secreto", jwt.MapClaims{"id": float64(7)})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
}

func TestUserFromToken_MissingIDClaim(t *testing.T) {
	router := newProtectedRouter(testSecret)
	signed := signToken(t, testSecret, jwt.MapClaims{"sub": "7"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
}

func TestUserFromToken_MalformedToken(t *testing.T) {
	router := newProtectedRouter(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-jwt")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
