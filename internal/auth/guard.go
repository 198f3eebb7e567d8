// Package auth 实现与传输层无关的访问策略：给定调用方身份与接口要求的角色，判断是否放行。
package auth

import (
	"errors"

	"quiz_hub_backend/internal/model"
)

var (
	ErrUnauthenticated = errors.New("no authenticated session")
	ErrRoleMismatch    = errors.New("role not permitted")
)

// Identity 已认证调用方，由会话（JWT）解析而来
type Identity struct {
	UserID string
	Role   model.UserRole
}

// Authorize 要求身份存在且角色与接口要求完全一致，管理员不会自动获得普通用户接口的权限
func Authorize(id *Identity, required model.UserRole) error {
	if id == nil || id.UserID == "" {
		return ErrUnauthenticated
	}
	if id.Role != required {
		return ErrRoleMismatch
	}
	return nil
}
