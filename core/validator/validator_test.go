package validator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meupdi/pdi/core/validator"
)

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule
		valid bool
	}{
		{"required ok", validator.Required("email", "a@b.com"), true},
		{"required blank", validator.Required("email", "   "), false},
		{"email ok", validator.ValidEmail("email", "a@b.com"), true},
		{"email empty passes", validator.ValidEmail("email", ""), true},
		{"email no tld", validator.ValidEmail("email", "a@b"), false},
		{"email no at", validator.ValidEmail("email", "ab.com"), false},
		{"min ok", validator.MinLen("nickname", "an", 2), true},
		{"min short", validator.MinLen("nickname", "a", 2), false},
		{"min counts runes", validator.MinLen("nickname", "é", 2), false},
		{"max ok", validator.MaxLen("name", "abc", 3), true},
		{"max long", validator.MaxLen("name", "abcd", 3), false},
		{"password ok", validator.StrongPassword("password", "Secret1!"), true},
		{"password short", validator.StrongPassword("password", "Sec1!"), false},
		{"password no symbol", validator.StrongPassword("password", "Secret12"), false},
		{"password no upper", validator.StrongPassword("password", "secret1!"), false},
		{"password no lower", validator.StrongPassword("password", "SECRET1!"), false},
		{"password no digit", validator.StrongPassword("password", "Secret!!"), false},
		{"one of ok", validator.OneOf("status", "DRAFT", "DRAFT", "DONE"), true},
		{"one of bad", validator.OneOf("status", "LATE", "DRAFT", "DONE"), false},
		{"uuid ok", validator.ValidUUID("id", "8c1f3a52-7f4e-4b8e-9d3c-0f5b2a6e1d47"), true},
		{"uuid bad", validator.ValidUUID("id", "42"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, tt.rule.Check())
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	require.NoError(t, validator.Apply(
		validator.Required("email", "a@b.com"),
		validator.ValidEmail("email", "a@b.com"),
	))

	err := validator.Apply(
		validator.Required("email", ""),
		validator.ValidEmail("nickname", "x"),
		validator.StrongPassword("password", "weak"),
	)
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)
	assert.True(t, verrs.Has("password"))
	assert.False(t, verrs.Has("missing"))
	assert.Equal(t, []string{"field is required"}, verrs.Get("email"))
	assert.Equal(t, "validation.password", verrs[2].TranslationKey)
	assert.Equal(t, validator.MinPasswordLength, verrs[2].TranslationValues["min"])
	assert.True(t, strings.HasPrefix(err.Error(), "validation failed: email: field is required"))
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	type Goal struct {
		Description string `json:"description" validate:"required"`
	}
	type Input struct {
		Nickname string  `json:"nickname" validate:"required;min:2"`
		Email    string  `json:"email" validate:"required;email"`
		Password string  `json:"password" validate:"required;password"`
		Status   *string `json:"status" validate:"in:DRAFT,PENDING"`
		Note     string  `validate:"-"`
		Goal     Goal    `json:"goal"`
	}

	status := "DRAFT"
	ok := Input{
		Nickname: "ana",
		Email:    "a@b.com",
		Password: "Secret1!",
		Status:   &status,
		Goal:     Goal{Description: "grow"},
	}
	require.NoError(t, validator.ValidateStruct(&ok))

	bad := "LATE"
	err := validator.ValidateStruct(&Input{Nickname: "a", Email: "nope", Status: &bad})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("nickname"))
	assert.True(t, verrs.Has("email"))
	assert.True(t, verrs.Has("password"))
	assert.True(t, verrs.Has("status"))
	assert.True(t, verrs.Has("goal.description"))

	assert.Error(t, validator.ValidateStruct(ok))
}

func TestRegisterValidator(t *testing.T) {
	t.Parallel()

	validator.RegisterValidator("no_spaces", func(field, value string, _ []string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return !strings.Contains(value, " ") },
			Error: validator.ValidationError{Field: field, Message: "must not contain spaces"},
		}
	})

	type Input struct {
		Handle string `validate:"no_spaces"`
	}
	err := validator.ValidateStruct(&Input{Handle: "a b"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"must not contain spaces"}, verrs.Get("Handle"))
}
