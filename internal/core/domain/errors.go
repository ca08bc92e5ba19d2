package domain

import (
	"errors"
	"fmt"
)

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrListingNotFound        = errors.New("listing not found")
	ErrRemoteListingImmutable = errors.New("remote listing cannot be edited through the draft workflow")
	ErrConfirmationRequired   = errors.New("removal confirmation token is missing or invalid")
	ErrBackendUnavailable     = errors.New("backend listings service is unavailable")
	ErrValidation             = errors.New("validation failed")
)

// ValidationError - ошибка валидации обязательного поля шага.
// Блокирует отметку шага как заполненного, отдается пользователю
// как сообщение, а не как внутренняя ошибка.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// Unwrap позволяет проверять errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError - конструктор.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError проверяет, является ли ошибка ошибкой валидации.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
