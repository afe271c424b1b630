package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_TypeAndCode(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("no such game"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("email taken"), ErrorTypeConflict, http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("stale session"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequestError("malformed body"), ErrorTypeBadRequest, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_ErrorIncludesDetails(t *testing.T) {
	bare := NewInternalError("query failed")
	assert.Equal(t, "internal_error: query failed", bare.Error())

	detailed := NewInternalError("query failed", "connection reset")
	assert.Contains(t, detailed.Error(), "connection reset")
}

func TestGetAppError_UnwrapsWrappedErrors(t *testing.T) {
	inner := NewNotFoundError("no such game")
	wrapped := fmt.Errorf("loading dashboard: %w", inner)

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeNotFound, got.Type)

	assert.Nil(t, GetAppError(fmt.Errorf("plain error")))
	assert.Nil(t, GetAppError(nil))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFoundError(NewNotFoundError("gone")))
	assert.True(t, IsValidationError(NewValidationError("bad input")))
	assert.True(t, IsUnauthorizedError(NewUnauthorizedError("stale session")))

	other := NewConflictError("email taken")
	assert.False(t, IsNotFoundError(other))
	assert.False(t, IsValidationError(other))
	assert.False(t, IsUnauthorizedError(other))
	assert.False(t, IsNotFoundError(fmt.Errorf("plain error")))
}
