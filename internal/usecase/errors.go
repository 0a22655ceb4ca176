package usecase

import (
	"errors"
	"fmt"
)

// 呼び出し側に返すエラーの種類（この3つだけ）
type ErrorKind string

const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindInternal        ErrorKind = "INTERNAL"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NotFound(message string, cause error) error {
	return &AppError{Kind: KindNotFound, Message: message, Err: cause}
}

func InvalidArgument(message string) error {
	return &AppError{Kind: KindInvalidArgument, Message: message}
}

// DB等の想定外エラー。message は外に出してよい文言にする
func Internal(message string, cause error) error {
	return &AppError{Kind: KindInternal, Message: message, Err: cause}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}

// AppError 以外は INTERNAL 扱い
func KindOf(err error) ErrorKind {
	if ae, ok := AsAppError(err); ok {
		return ae.Kind
	}
	return KindInternal
}
