package validation

import "strings"

// LoginInput is the admin login form.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=256"`
}

// ValidateLogin trims the email; the password is checked as given.
func (v *Validator) ValidateLogin(in LoginInput) (LoginInput, error) {
	normalized := LoginInput{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: in.Password,
	}
	if err := v.check(normalized); err != nil {
		return LoginInput{}, err
	}
	return normalized, nil
}
