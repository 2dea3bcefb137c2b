package model

import (
	"errors"
	"fmt"
)

// 错误类别。处理器返回 *Error，HTTP 层按类别映射状态码。
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error 业务错误
type Error struct {
	Kind    error
	Message string
	// Fields 仅用于校验错误：字段名 -> 提示
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFound 构造 NotFound 错误
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict 构造 Conflict 错误
func Conflict(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized 构造 Unauthorized 错误
func Unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

// Invalid 构造校验错误
func Invalid(fields map[string]string) error {
	return &Error{Kind: ErrValidation, Message: "validation failed", Fields: fields}
}

// KindOf 返回错误类别，未知错误返回 nil
func KindOf(err error) error {
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrValidation, ErrUnauthorized} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
