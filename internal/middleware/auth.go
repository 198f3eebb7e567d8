package middleware

import (
	"strings"

	"quiz_hub_backend/internal/auth"
	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/util"
	"quiz_hub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware 解析 Bearer token（或 token 查询参数），失败返回 401
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("JWT parse failed", zap.String("path", c.FullPath()), zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, claims)
		c.Next()
	}
}

// RoleMiddleware 要求调用者恰好是指定角色，管理员也不能访问用户接口
func RoleMiddleware(role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if err := auth.Authorize(claims.Identity(), role); err != nil {
			logger.Log.Debug("Access denied",
				zap.String("path", c.FullPath()),
				zap.String("required", string(role)),
				zap.Error(err),
			)
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole 认证加角色校验
func RequireRole(secret string, role model.UserRole) []gin.HandlerFunc {
	return []gin.HandlerFunc{AuthMiddleware(secret), RoleMiddleware(role)}
}
