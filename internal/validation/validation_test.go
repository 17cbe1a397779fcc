package validation

import (
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_OrderPreserved(t *testing.T) {
	t.Parallel()

	var v Errors
	v.Require("name", "", "Name is required")
	v.Email("email", "nope")
	v.Password("password", "abc")

	require.False(t, v.Empty())
	fields := v.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "email", fields[1].Field)
	assert.Equal(t, "password", fields[2].Field)
}

func TestErrors_PassingPayload(t *testing.T) {
	t.Parallel()

	var v Errors
	v.Require("name", "Alice", "Name is required")
	v.Email("email", "alice@example.com")
	v.Password("password", "123456")

	assert.True(t, v.Empty())
	assert.NoError(t, v.Err())
}

func TestErrors_ErrCarriesFields(t *testing.T) {
	t.Parallel()

	var v Errors
	v.Require("text", "", "Text is required")

	err := v.Err()
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "Text is required", appErr.Fields[0].Message)
}

func TestPassword_Bounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"too short", "12345", false},
		{"minimum length", "123456", true},
		{"long but allowed", string(make([]byte, 128)), true},
		{"over maximum", string(make([]byte, 129)), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var v Errors
			v.Password("password", tc.password)
			assert.Equal(t, tc.valid, v.Empty())
		})
	}
}
