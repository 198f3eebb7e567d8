// Package testutil 测试辅助：内存数据库、假存储、请求构造与断言。
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz_hub_backend/internal/config"
	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/util"
	"quiz_hub_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TestSecret 测试用 JWT 密钥
const TestSecret = "test-secret-with-enough-length-000000"

// NewTestDB 创建迁移完成的内存 sqlite 数据库
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.InitDB(&config.DatabaseConfig{
		Driver:   util.DriverSQLite,
		Path:     ":memory:",
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// GetTestConfig 返回测试配置
func GetTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.JWT.Secret = TestSecret
	cfg.JWT.ExpireTime = time.Hour
	cfg.RateLimit.MaxRequests = 10000
	cfg.RateLimit.WindowMinutes = 1
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

// TokenFor 为指定用户签发测试 token
func TokenFor(t *testing.T, userID string, role model.UserRole) string {
	t.Helper()

	user := &model.User{Email: userID + "@example.com", Role: role}
	user.ID = userID
	token, err := util.GenerateJWT(user, TestSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

// MakeRequest 构造请求并交给 handler 处理；body 为 nil 时不带请求体
func MakeRequest(t *testing.T, handler http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				t.Fatalf("Failed to encode request body: %v", err)
			}
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Fatalf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON 解析响应体到 target
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), target); err != nil {
		t.Fatalf("Failed to decode response: %v. Body: %s", err, w.Body.String())
	}
}

// AssertMessage 断言错误信封中的 message
func AssertMessage(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var resp util.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Message != expected {
		t.Errorf("Expected message %q, got %q", expected, resp.Message)
	}
}
