package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/clothescatalog/internal/common"
	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestEmail(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"a@b.com", true},
		{"jane.doe+shop@example.co.uk", true},
		{"", false},
		{"jane", false},
		{"jane@", false},
		{"@example.com", false},
		{"jane@example", false},
		{"a..b@example.com", false},
		{".a@example.com", false},
		{"a.@example.com", false},
		{"a@-example.com", false},
		{"a@example..com", false},
		{strings.Repeat("a", 115) + "@b.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := Email(tt.in)
			if tt.ok {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, "email", err.Field)
			}
		})
	}
}

func TestEmail_Reasons(t *testing.T) {
	assert.Equal(t, &FieldError{Field: "email", Reason: "is required"}, Email(""))
	assert.Equal(t, &FieldError{Field: "email", Reason: "Email is not valid"}, Email("a..b@example.com"))

	long := strings.Repeat("a", 60) + "@" + strings.Repeat("b", 60) + ".com"
	assert.Equal(t, &FieldError{Field: "email", Reason: "is too long"}, Email(long))
}

func TestFullName(t *testing.T) {
	assert.Nil(t, FullName("Jane Doe"))
	assert.Nil(t, FullName("  Jane   Doe "))

	for _, bad := range []string{"", "Jane", "Jane Ann Doe", "   "} {
		err := FullName(bad)
		require.NotNil(t, err, "full name %q must be rejected", bad)
		assert.Equal(t, "full_name", err.Field)
	}
}

func TestPassword(t *testing.T) {
	assert.Nil(t, Password("secret"))
	assert.NotNil(t, Password(""))
	assert.NotNil(t, Password(strings.Repeat("p", 73)))
}

func TestPhone(t *testing.T) {
	assert.Nil(t, Phone(nil))
	assert.Nil(t, Phone(ptr("+359888123456")))
	assert.NotNil(t, Phone(ptr("+3598881234567")))
	assert.NotNil(t, Phone(ptr("088-812")))
	assert.NotNil(t, Phone(ptr("")))
	assert.NotNil(t, Phone(ptr("+")))
	assert.Equal(t, "must contain digits only", Phone(ptr("088-812")).Reason)
	assert.Equal(t, "is too long", Phone(ptr("+3598881234567")).Reason)
}

func TestPhotoURL(t *testing.T) {
	assert.Nil(t, PhotoURL(nil))
	assert.Nil(t, PhotoURL(ptr("https://cdn.example.com/clothes/1.jpg")))
	assert.NotNil(t, PhotoURL(ptr("ftp://example.com/1.jpg")))
	assert.NotNil(t, PhotoURL(ptr("/relative/1.jpg")))
	assert.NotNil(t, PhotoURL(ptr("")))
	assert.NotNil(t, PhotoURL(ptr("https://")))
	assert.Equal(t, "is too long", PhotoURL(ptr("https://example.com/"+strings.Repeat("x", 250))).Reason)
}

func TestValidateRegistration(t *testing.T) {
	err := ValidateRegistration(Registration{Email: "a@b.com", FullName: "Jane Doe", Password: "secret"})
	require.NoError(t, err)

	err = ValidateRegistration(Registration{Email: "a@b.com", FullName: "Jane", Password: "secret"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorValidation))

	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "full_name", verrs[0].Field)
}

func TestValidateRegistration_CollectsAllFields(t *testing.T) {
	err := ValidateRegistration(Registration{Email: "nope", FullName: "Jane", Password: "", Phone: ptr("abc")})

	var verrs Errors
	require.True(t, errors.As(err, &verrs))

	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"email", "full_name", "password", "phone"}, fields)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateClothes(t *testing.T) {
	item, err := ValidateClothes(NewClothes{Name: "Shirt", Color: "pink", Size: "xs"})
	require.NoError(t, err)
	assert.Equal(t, "Shirt", item.Name)
	assert.Equal(t, models.ColorPink, item.Color)
	assert.Equal(t, models.SizeXS, item.Size)
	assert.Nil(t, item.PhotoURL)
}

func TestValidateClothes_InvalidEnums(t *testing.T) {
	item, err := ValidateClothes(NewClothes{Name: "Shirt", Color: "red", Size: "xxxl"})
	require.Error(t, err)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, common.ErrorValidation)

	var verrs Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "color", verrs[0].Field)
	assert.Equal(t, "size", verrs[1].Field)
}

func TestValidateClothes_MissingName(t *testing.T) {
	_, err := ValidateClothes(NewClothes{Name: " ", Color: "black", Size: "m"})

	var verrs Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "name", verrs[0].Field)
}
