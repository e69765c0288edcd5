package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name:        "error without cause",
			appError:    NewAppValidationError("quarter out of range", nil),
			wantMessage: "[VALIDATION] quarter out of range",
		},
		{
			name:        "error with cause",
			appError:    NewConfigError("failed to read config file", errors.New("permission denied")),
			wantMessage: "[CONFIG] failed to read config file: permission denied",
		},
		{
			name:        "not found message",
			appError:    NewNotFoundError("workbook master.xlsx", nil),
			wantMessage: "[NOT_FOUND] workbook master.xlsx not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("failed to create output directory", cause)

	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewParsingError("unreadable sheet", nil).
		WithContext("sheet", "Master").
		WithContext("row", 12)

	assert.Equal(t, "Master", err.Context["sheet"])
	assert.Equal(t, 12, err.Context["row"])

	bare := &AppError{Type: ErrTypeParsing, Message: "x"}
	bare.WithContext("k", "v")
	assert.Equal(t, "v", bare.Context["k"])
}
