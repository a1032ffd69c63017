package services

import "errors"

var (
	// ErrValidation 入力値が不正
	ErrValidation = errors.New("validation failed")
	// ErrInvalidPassphrase 会員コードが一致しない
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	// ErrUnauthorized 会員セッションが無効
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError 利用者に表示するメッセージ付きの入力エラー
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap errors.Is(err, ErrValidation) で判定できるようにする
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}
