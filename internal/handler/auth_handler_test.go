package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/handler"
	"billbook/internal/service"
	"billbook/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, w *httptest.ResponseRecorder, path string, body interface{}) *gin.Context {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	expected := &domain.User{ID: uuid.New(), Username: "rajesh"}
	mockAuth.On("Register", mock.Anything, mock.MatchedBy(func(input service.RegisterInput) bool {
		return input.Username == "rajesh"
	})).Return(expected, nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/auth/register", map[string]string{
		"username": "rajesh",
		"password": "s3cret-pass",
	})

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
		Return(nil, domain.ErrDuplicateUsername)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/auth/register", map[string]string{
		"username": "rajesh",
		"password": "s3cret-pass",
	})

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_MissingPassword(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/auth/register", map[string]string{
		"username": "rajesh",
	})

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	tokenPair := &service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	mockAuth.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).Return(tokenPair, nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/auth/login", map[string]string{
		"username": "rajesh",
		"password": "s3cret-pass",
	})

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access-token")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/auth/login", map[string]string{
		"username": "rajesh",
		"password": "wrong",
	})

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	tokenPair := &service.TokenPair{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	mockAuth.On("RefreshToken", mock.Anything, "old-refresh").Return(tokenPair, nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": "old-refresh",
	})

	h.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "new-access")
}

func TestAuthHandler_RefreshToken_Invalid(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("RefreshToken", mock.Anything, "stale").Return(nil, domain.ErrUnauthorized)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": "stale",
	})

	h.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
