package domain

import "strings"

// Credentials are the login form fields.
type Credentials struct {
	Email    string
	Password string
}

// Validate reports ErrMissingFields when either field is blank.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Password) == "" {
		return ErrMissingFields
	}
	return nil
}

// Registration holds the sign-up form fields.
type Registration struct {
	Age             string
	DNI             string
	Profession      string
	Email           string
	Password        string
	PasswordConfirm string
}

// Validate checks presence of every field, then that both passwords match.
func (r Registration) Validate() error {
	for _, v := range []string{r.Age, r.DNI, r.Profession, r.Email, r.Password, r.PasswordConfirm} {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}
	if r.Password != r.PasswordConfirm {
		return ErrPasswordMismatch
	}
	return nil
}
