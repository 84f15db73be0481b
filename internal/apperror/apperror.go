// Package apperror 定义对客户端可见的领域错误。
// 不属于这里的错误都按基础设施错误处理，只记录日志，不向客户端暴露细节。
package apperror

import (
	"errors"

	"github.com/nihatdadaloglu/oda/internal/constants"
)

// Kind 错误分类
type Kind int

const (
	KindAuthentication Kind = iota + 1
	KindPermission
	KindValidation
	KindNotFound
)

// Error 领域错误，Reason 用于 errors.Is 比较，Message 返回给客户端
type Error struct {
	Kind    Kind
	Reason  string
	Message string
}

func (e *Error) Error() string {
	return e.Reason + ": " + e.Message
}

// Is 按 Reason 比较，使同类错误可以携带不同的提示信息
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Reason == e.Reason
}

var (
	ErrInvalidCredentials = &Error{KindAuthentication, "invalid_credentials", constants.ErrAuthFailed}
	ErrMissingToken       = &Error{KindAuthentication, "missing_token", constants.ErrUnauthorized}
	ErrInvalidToken       = &Error{KindAuthentication, "invalid_token", constants.ErrInvalidToken}
	ErrUnknownSubject     = &Error{KindAuthentication, "unknown_subject", constants.ErrUserNotFound}
	ErrInsufficientRole   = &Error{KindPermission, "insufficient_role", constants.ErrInsufficientPermission}

	ErrTooLarge        = &Error{KindValidation, "too_large", constants.ErrFileTooLarge}
	ErrUnsupportedType = &Error{KindValidation, "unsupported_type", constants.ErrUnsupportedType}
	ErrMalformedID     = &Error{KindValidation, "malformed_id", constants.ErrInvalidID}
	ErrMalformedInput  = &Error{KindValidation, "malformed_input", constants.ErrInvalidParams}

	ErrNotFound = &Error{KindNotFound, "not_found", constants.ErrNotFound}
)

// NotFound 返回带资源提示信息的 ErrNotFound
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Reason: ErrNotFound.Reason, Message: message}
}

// MalformedInput 返回带具体提示信息的 ErrMalformedInput
func MalformedInput(message string) *Error {
	return &Error{Kind: KindValidation, Reason: ErrMalformedInput.Reason, Message: message}
}

// From 提取错误链中的领域错误
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
