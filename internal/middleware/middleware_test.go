package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloghub/internal/config"
)

const testSecret = "test-secret-key"

func testConfig() *config.Config {
	return &config.Config{JWTSecretKey: testSecret}
}

func makeToken(t *testing.T, secret string, exp time.Time) string {
	claims := jwt.MapClaims{
		"id":    "user-123",
		"name":  "Tester",
		"email": "test@example.com",
		"exp":   exp.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

// echoSubject records whether the handler was reached and what subject it saw.
type echoSubject struct {
	called  bool
	subject Subject
	bound   bool
}

func (e *echoSubject) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.called = true
		e.subject, e.bound = SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	echo := &echoSubject{}
	guard := RequireAuth(testConfig())(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set("Authorization", makeToken(t, testSecret, time.Now().Add(time.Hour)))
	rr := httptest.NewRecorder()

	guard.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, echo.called)
	assert.True(t, echo.bound)
	assert.Equal(t, "user-123", echo.subject.UserID)
	assert.Equal(t, "test@example.com", echo.subject.Email)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	echo := &echoSubject{}
	guard := RequireAuth(testConfig())(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	rr := httptest.NewRecorder()

	guard.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, echo.called)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	echo := &echoSubject{}
	guard := RequireAuth(testConfig())(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set("Authorization", makeToken(t, "another-secret", time.Now().Add(time.Hour)))
	rr := httptest.NewRecorder()

	guard.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, echo.called)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	echo := &echoSubject{}
	guard := RequireAuth(testConfig())(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set("Authorization", makeToken(t, testSecret, time.Now().Add(-time.Hour)))
	rr := httptest.NewRecorder()

	guard.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, echo.called)
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	echo := &echoSubject{}
	guard := RequireAuth(testConfig())(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set("Authorization", "garbage")
	rr := httptest.NewRecorder()

	guard.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, echo.called)
}

func TestOptionalAuth_NoToken(t *testing.T) {
	echo := &echoSubject{}
	guard := OptionalAuth(testConfig())(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/blog/abc", nil)
	rr := httptest.NewRecorder()

	guard.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, echo.called)
	assert.False(t, echo.bound)
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	echo := &echoSubject{}
	guard := OptionalAuth(testConfig())(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/blog/abc", nil)
	req.Header.Set("Authorization", makeToken(t, testSecret, time.Now().Add(time.Hour)))
	rr := httptest.NewRecorder()

	guard.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, echo.bound)
	assert.Equal(t, "user-123", echo.subject.UserID)
}

// A token that is present but fails verification is rejected even on optional
// routes, continuing here would be an authorization bypass.
func TestOptionalAuth_InvalidTokenRejected(t *testing.T) {
	echo := &echoSubject{}
	guard := OptionalAuth(testConfig())(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/blog/abc", nil)
	req.Header.Set("Authorization", makeToken(t, "another-secret", time.Now().Add(time.Hour)))
	rr := httptest.NewRecorder()

	guard.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, echo.called)
}
