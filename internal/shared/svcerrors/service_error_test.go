package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("INVALID_DATE", "Invalid date format", nil),
			wantErr: NewInvalidArgumentError("INVALID_DATE", "Invalid date format", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("Failed to retrieve visitor statistics", nil)),
			wantErr: NewInternalError("Failed to retrieve visitor statistics", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestNewInternalError_Defaults(t *testing.T) {
	err := NewInternalError("", errors.New("boom"))
	assert.Equal(t, CodeInternalError, err.Code)
	assert.Equal(t, "Internal server error", err.Message)
	assert.Equal(t, 500, err.HttpStatusCode)
	assert.True(t, err.IsInternalError())
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("Failed to submit feedback", cause)
	assert.ErrorIs(t, err, cause)
}
