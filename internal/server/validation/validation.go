// Package validation checks request payloads field by field before they reach
// a repository. Field validators return nil on success; object validators
// collect every failing field into Errors.
package validation

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/clothescatalog/internal/common"
	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
	"github.com/go-playground/validator/v10"
)

// Tag sets mirror the column widths of the users and clothes tables.
const (
	emailTags    = "required,email,max=120"
	fullNameTags = "max=200"
	phoneTags    = "max=13"
	digitsTags   = "required,number"
	nameTags     = "required,max=120"
	photoURLTags = "omitempty,http_url,max=255"

	// bcrypt ignores everything past 72 bytes; validator's max counts runes.
	maxPasswordLen = 72
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// reasons maps a failing validator tag to the message returned to clients.
var reasons = map[string]string{
	"required": "is required",
	"max":      "is too long",
	"email":    "Email is not valid",
	"http_url": "must be an absolute http(s) URL",
	"number":   "must contain digits only",
}

// check runs tags against value and reports the first failing tag as a
// FieldError on field.
func check(field string, value any, tags string) *FieldError {
	err := validate.Var(value, tags)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if reason, ok := reasons[verrs[0].Tag()]; ok {
			return &FieldError{Field: field, Reason: reason}
		}
		return &FieldError{Field: field, Reason: "failed " + verrs[0].Tag() + " check"}
	}
	return &FieldError{Field: field, Reason: err.Error()}
}

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Errors is the result of an object-level validation.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i := range e {
		parts[i] = e[i].Error()
	}
	return common.ErrorValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == common.ErrorValidation
}

// collect drops nil results and returns nil when nothing failed.
func collect(results ...*FieldError) error {
	var errs Errors
	for _, r := range results {
		if r != nil {
			errs = append(errs, *r)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func Email(v string) *FieldError {
	return check("email", v, emailTags)
}

// FullName requires exactly two whitespace-separated names.
func FullName(v string) *FieldError {
	if err := check("full_name", v, fullNameTags); err != nil {
		return err
	}
	if len(strings.Fields(v)) != 2 {
		return &FieldError{Field: "full_name", Reason: "You should provide at least two names"}
	}
	return nil
}

func Password(v string) *FieldError {
	if err := check("password", v, "required"); err != nil {
		return err
	}
	if len(v) > maxPasswordLen {
		return &FieldError{Field: "password", Reason: "must be at most 72 bytes"}
	}
	return nil
}

// Phone accepts an absent value; otherwise digits with an optional leading '+'.
func Phone(v *string) *FieldError {
	if v == nil {
		return nil
	}
	if err := check("phone", *v, phoneTags); err != nil {
		return err
	}
	return check("phone", strings.TrimPrefix(*v, "+"), digitsTags)
}

func Name(v string) *FieldError {
	if strings.TrimSpace(v) == "" {
		return &FieldError{Field: "name", Reason: "is required"}
	}
	return check("name", v, nameTags)
}

func PhotoURL(v *string) *FieldError {
	if v == nil {
		return nil
	}
	if *v == "" {
		return &FieldError{Field: "photo_url", Reason: "must be an absolute http(s) URL"}
	}
	return check("photo_url", *v, photoURLTags)
}

func Color(v string) (models.Color, *FieldError) {
	c, err := models.ParseColor(v)
	if err != nil {
		return "", &FieldError{Field: "color", Reason: err.Error()}
	}
	return c, nil
}

func Size(v string) (models.Size, *FieldError) {
	s, err := models.ParseSize(v)
	if err != nil {
		return "", &FieldError{Field: "size", Reason: err.Error()}
	}
	return s, nil
}

// Registration is the payload of POST /register.
type Registration struct {
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
}

func ValidateRegistration(r Registration) error {
	return collect(
		Email(r.Email),
		FullName(r.FullName),
		Password(r.Password),
		Phone(r.Phone),
	)
}

// NewClothes is the payload of POST /clothes.
type NewClothes struct {
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Size     string  `json:"size"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

// ValidateClothes checks the payload and translates it into a model ready
// for insertion.
func ValidateClothes(c NewClothes) (*models.Clothes, error) {
	color, colorErr := Color(c.Color)
	size, sizeErr := Size(c.Size)

	if err := collect(Name(c.Name), colorErr, sizeErr, PhotoURL(c.PhotoURL)); err != nil {
		return nil, err
	}

	return &models.Clothes{
		Name:     c.Name,
		Color:    color,
		Size:     size,
		PhotoURL: c.PhotoURL,
	}, nil
}
