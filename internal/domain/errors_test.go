package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToCode(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorCode
	}{
		{ErrUserExists, CodeUserExists},
		{ErrInvalidStatus, CodeInvalidStatus},
		{ErrInvalidEmail, CodeValidation},
		{ErrEmptyTitle, CodeValidation},
		{ErrUsernameTooLong, CodeValidation},
		{ErrEmailTooLong, CodeValidation},
		{ErrNameTooLong, CodeValidation},
		{ErrTitleTooLong, CodeValidation},
		{ErrNotMember, CodeNotMember},
		{ErrForbidden, CodeForbidden},
		{ErrNoCandidate, CodeNoCandidate},
		{ErrTaskNotFound, CodeNotFound},
		{fmt.Errorf("load task: %w", ErrCommentNotFound), CodeNotFound},
		{ErrInvalidToken, CodeUnauthorized},
		{errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToCode(tt.err))
		})
	}
}
