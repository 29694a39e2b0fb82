package rooms

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("internal error")
)

// ValidationError ошибка валидации полей запроса
// Содержит сообщения по каждому невалидному полю, как их
// отдает граница API: {"field": ["msg", ...]}
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError создает пустую ошибку валидации
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add добавляет сообщение об ошибке для поля
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors сообщает, есть ли накопленные ошибки
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
