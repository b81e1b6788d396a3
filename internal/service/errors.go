package service

import (
	"errors"
	"fmt"
)

// 业务哨兵错误，处理器按 errors.Is 映射到响应码
var (
	ErrArticleNotFound = errors.New("article not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrTagNotFound     = errors.New("tag not found")
	ErrEmailTaken      = errors.New("user with this email already exists")
	ErrInvalidCartItem = errors.New("invalid cart item")
)

// ValidationError 校验失败（进入持久层之前拦截）
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
