package user

import (
	"strings"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 8
)

// RegisterInput holds the parameters for creating an account.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	if len(username) < minUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "min 3 characters"})
	}
	if len(username) > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	}
	if strings.ContainsAny(username, " \t\n") {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain whitespace"})
	}

	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds the credentials for logging in.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
