package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructValidator(t *testing.T) {
	sv := NewStructValidator()
	type s struct {
		Email string  `json:"email" validate:"required,email"`
		Alt   *string `json:"alt,omitempty" validate:"omitempty,email"`
	}
	require.NoError(t, sv.Validate(&s{Email: "a@b.com"}))

	err := sv.Validate(&s{Email: "nope"})
	require.Error(t, err)
	require.Equal(t, "email: must be a valid email", Describe(err))

	bad := "x"
	err = sv.Validate(&s{Email: "a@b.com", Alt: &bad})
	require.Equal(t, "alt: must be a valid email", Describe(err))

	err = sv.Validate(&s{})
	require.Equal(t, "email: is required", Describe(err))

	require.Equal(t, "plain", Describe(errors.New("plain")))
}
