// Package forms validates the login and registration forms. Each rule
// yields a catalog message key; views render the localized text.
package forms

import (
	"regexp"
	"strings"
)

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Errors maps field names to catalog message keys. An empty map means
// the form may submit.
type Errors map[string]string

// Has reports whether the field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Key returns the message key for a failed field, or the empty string.
func (e Errors) Key(field string) string {
	return e[field]
}

// LoginForm carries the login page input.
type LoginForm struct {
	Email    string
	Password string
	Remember bool
}

// Validate checks every field and returns the full error set in one
// pass, so all problems surface on a single submit.
func (f LoginForm) Validate() Errors {
	errs := Errors{}
	if required(f.Email) {
		errs["email"] = "errors.email_required"
	} else if !emailShape.MatchString(strings.TrimSpace(f.Email)) {
		errs["email"] = "errors.email_invalid"
	}
	if required(f.Password) {
		errs["password"] = "errors.password_required"
	} else if len(f.Password) < 6 {
		errs["password"] = "errors.password_min_length"
	}
	return errs
}

// RegisterForm carries the registration page input.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool
}

// Validate checks every field and returns the full error set in one pass.
func (f RegisterForm) Validate() Errors {
	errs := Errors{}
	if required(f.Name) {
		errs["name"] = "errors.name_required"
	}
	if required(f.Email) {
		errs["email"] = "errors.email_required"
	} else if !emailShape.MatchString(strings.TrimSpace(f.Email)) {
		errs["email"] = "errors.email_invalid"
	}
	if required(f.Password) {
		errs["password"] = "errors.password_required"
	} else if len(f.Password) < 6 {
		errs["password"] = "errors.password_min_length"
	}
	if required(f.ConfirmPassword) {
		errs["confirmPassword"] = "errors.confirm_password_required"
	} else if f.ConfirmPassword != f.Password {
		errs["confirmPassword"] = "errors.password_mismatch"
	}
	if !f.AgreeToTerms {
		errs["agreeToTerms"] = "errors.agree_required"
	}
	return errs
}

func required(value string) bool {
	return strings.TrimSpace(value) == ""
}
