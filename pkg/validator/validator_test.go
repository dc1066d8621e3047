package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+99890123456", true},
		{"901234567", true},
		{"+998901234567", false},
		{"998901234567", false},
		{"90123456", false},
		{"801234567", false},
		{"+99890 12345", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhone(tt.phone))
		})
	}
}

type contactInput struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required,phone_uz"`
	Message  string `form:"message" json:"msg" validate:"required"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(contactInput{FullName: "Ali", Phone: "901234567", Message: "Salom"}))

	err := Validate(contactInput{FullName: "", Phone: "12345", Message: ""})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 3)

	assert.Equal(t, FieldError{Field: "full_name", Rule: "required"}, verrs[0])
	assert.Equal(t, "phone", verrs[1].Field)
	assert.Equal(t, "phone_uz", verrs[1].Rule)
	assert.Equal(t, "message", verrs[2].Field)
	assert.True(t, verrs.Has("required"))
	assert.Contains(t, err.Error(), "phone должен быть в формате")
}

func TestValidateRequiredBeforePhone(t *testing.T) {
	err := Validate(contactInput{FullName: "Ali", Message: "x"})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "required", verrs[0].Rule)
	assert.False(t, verrs.Has("phone_uz"))
}
