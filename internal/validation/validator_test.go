package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Slug  string `json:"slug" validate:"required,slug"`
	Color string `json:"color" validate:"omitempty,hexcolor6"`
	Name  string `json:"name" validate:"required,notblank"`
}

func TestSlugValidation(t *testing.T) {
	v := New()
	for _, ok := range []string{"web-development", "3d-printing", "drone"} {
		require.NoError(t, v.Var(ok, "slug"), ok)
	}
	for _, bad := range []string{"Web", "-web", "web-", "web--dev", "web dev", ""} {
		require.Error(t, v.Var(bad, "slug"), bad)
	}
}

func TestValidationErrorsUseJSONNames(t *testing.T) {
	v := New()
	err := v.Struct(sample{Slug: "Bad Slug", Color: "green", Name: "   "})
	require.Error(t, err)

	errs := v.ValidationErrors(err)
	require.Len(t, errs, 3)

	fields := map[string]string{}
	for _, fe := range errs {
		fields[fe.Field()] = fe.Tag()
	}
	require.Equal(t, map[string]string{"slug": "slug", "color": "hexcolor6", "name": "notblank"}, fields)
}

func TestValidationErrorsNil(t *testing.T) {
	v := New()
	require.Nil(t, v.ValidationErrors(nil))
	require.NoError(t, v.Struct(sample{Slug: "robotics", Color: "#22c55e", Name: "Ava"}))
}
