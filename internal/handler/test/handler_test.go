package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"bloghub/internal/config"
	handlers "bloghub/internal/handler"
	"bloghub/internal/middleware"
)

func createTestHandler(authService *MockAuthService, blogService *MockBlogService) *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		ServerPort:    8080,
		TokenDuration: 168 * time.Hour,
		BcryptCost:    4,
	}

	return &handlers.Handlers{
		AuthService:  authService,
		BlogService:  blogService,
		StatsService: &MockStatsService{},
		Cfg:          cfg,
		Validate:     validator.New(),
	}
}

// withSubject binds a verified identity to the request, the way the auth
// middleware does for protected routes.
func withSubject(r *http.Request, userID string) *http.Request {
	subject := middleware.Subject{
		UserID: userID,
		Name:   "Tester",
		Email:  "test@example.com",
	}
	return r.WithContext(middleware.ContextWithSubject(r.Context(), subject))
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

// assertJSONSuccess checks the successful JSON response
func assertJSONSuccess(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) map[string]interface{} {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}
