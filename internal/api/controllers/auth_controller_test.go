package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinpoint/internal/models/request_models"
	"pinpoint/pkg/utils"
)

type stubAuthService struct {
	token string
	err   error
}

func (s *stubAuthService) Login(context.Context, request_models.AdminLoginRequest) (string, error) {
	return s.token, s.err
}

func authRouter(svc *stubAuthService) *gin.Engine {
	r := gin.New()
	r.POST("/admin/login", NewAuthController(svc).Login)
	return r
}

func TestLoginReturnsToken(t *testing.T) {
	r := authRouter(&stubAuthService{token: "jwt-token"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login",
		strings.NewReader(`{"email":"admin@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "jwt-token", body["token"])
}

func TestLoginBadCredentials(t *testing.T) {
	r := authRouter(&stubAuthService{err: utils.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login",
		strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r := authRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
