package user

import (
	"strings"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// UpdateNameInput holds parameters for renaming the caller.
type UpdateNameInput struct {
	Name string
}

// Validate validates the update name input.
func (i UpdateNameInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PromoteInput holds parameters for granting the admin role.
type PromoteInput struct {
	Email string
}

// Validate validates the promote input.
func (i PromoteInput) Validate() error {
	email := strings.TrimSpace(i.Email)
	if email == "" {
		return domain.NewValidationError("email", "required")
	}
	if !strings.Contains(email, "@") {
		return domain.NewValidationError("email", "invalid format")
	}
	return nil
}
