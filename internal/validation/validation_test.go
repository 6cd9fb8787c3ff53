package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,min=4,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Name     string `json:"name" validate:"required,min=4,max=100"`
}

type patch struct {
	ID    uint64  `json:"-" param:"id" validate:"gt=0"`
	Email *string `json:"email" validate:"omitnil,email,max=200"`
	Size  int     `query:"size" validate:"min=1,max=100"`
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs Errors
	require.True(t, errors.As(err, &errs), "expected validation.Errors, got %v", err)
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestStructReportsEveryMissingField(t *testing.T) {
	got := fields(t, Struct(signup{}))
	assert.Equal(t, map[string]string{
		"username": "username is required",
		"password": "password is required",
		"name":     "name is required",
	}, got)
}

func TestStructLengthMessages(t *testing.T) {
	got := fields(t, Struct(signup{Username: "abc", Password: "12345678", Name: "Khannedy"}))
	assert.Equal(t, map[string]string{"username": "username must be at least 4 characters"}, got)
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(signup{Username: "khannedy", Password: "rahasia123", Name: "Eko Khannedy"}))
}

func TestTagNamesPreferParamAndQuery(t *testing.T) {
	bad := "not-an-email"
	got := fields(t, Struct(patch{Email: &bad, Size: 101}))
	assert.Equal(t, "id must be greater than 0", got["id"])
	assert.Equal(t, "email must be a valid email address", got["email"])
	assert.Equal(t, "size must be at most 100", got["size"])
}

func TestOmitNilSkipsAbsentFields(t *testing.T) {
	assert.NoError(t, Struct(patch{ID: 1, Size: 10}))
}

func TestRules(t *testing.T) {
	assert.NoError(t, Token("abcd"))
	assert.Equal(t, map[string]string{"token": "token is required"}, fields(t, Token("")))
	assert.Equal(t, map[string]string{"token": "token must be at least 4 characters"}, fields(t, Token("abc")))

	assert.NoError(t, ID(7))
	assert.Equal(t, map[string]string{"id": "id must be greater than 0"}, fields(t, ID(0)))
}

func TestErrorsString(t *testing.T) {
	err := Errors{{Field: "a", Message: "a is required"}, {Field: "b", Message: "b is invalid"}}
	assert.Equal(t, "validation failed: a: a is required; b: b is invalid", err.Error())
}
