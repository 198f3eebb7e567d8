package controller

import (
	"net/http"
	"testing"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/repository"
	"quiz_hub_backend/internal/service"
	"quiz_hub_backend/internal/testutil"

	"github.com/gin-gonic/gin"
)

func TestLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, "user@example.com", model.RoleUser)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAuthController(service.NewAuthService(repository.NewUserRepository(db), testutil.GetTestConfig()))
	r.POST("/api/login", ctrl.Login)

	w := testutil.MakeRequest(t, r, "POST", "/api/login", map[string]string{"email": "user@example.com", "password": "password"}, "")
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp LoginResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Token == "" || resp.User == nil || resp.User.Role != model.RoleUser {
		t.Errorf("Unexpected login response: %+v", resp)
	}

	tests := []struct {
		name   string
		body   interface{}
		status int
	}{
		{"wrong password", map[string]string{"email": "user@example.com", "password": "wrong"}, http.StatusUnauthorized},
		{"unknown user", map[string]string{"email": "nobody@example.com", "password": "password"}, http.StatusUnauthorized},
		{"invalid email", map[string]string{"email": "nope", "password": "password"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.MakeRequest(t, r, "POST", "/api/login", tt.body, "")
			testutil.AssertStatus(t, w, tt.status)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	db := testutil.NewTestDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/health", NewHealthController(db).HealthCheck)

	w := testutil.MakeRequest(t, r, "GET", "/api/health", nil, "")
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp map[string]interface{}
	testutil.AssertJSON(t, w, &resp)
	if resp["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", resp)
	}
}
