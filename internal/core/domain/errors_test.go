package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{ErrInvalidCredentials, ErrUnauthorized},
		{ErrInactiveUser, ErrUnauthorized},
		{ErrNotEnoughPrivileges, ErrForbidden},
		{ErrCannotDeleteSelf, ErrForbidden},
		{ErrTerminalNotFound, ErrNotFound},
		{ErrShopIDExists, ErrConflict},
		{ErrEmailExists, ErrConflict},
		{ErrTooManyMerchantCards, ErrValidation},
		{Validation("page must be an integer"), ErrValidation},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.kind, tc.err.Error())
	}
}

func TestError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("update terminal: %w", ErrShopIDExists)

	var derr *Error
	assert.True(t, errors.As(wrapped, &derr))
	assert.Equal(t, "ShopID already exists", derr.Msg)
	assert.ErrorIs(t, wrapped, ErrConflict)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
}
