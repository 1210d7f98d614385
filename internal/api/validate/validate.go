package validate

import (
	"regexp"
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func Length(field, value string, min, max int) *ErrField {
	if n := len(value); n < min || n > max {
		return &ErrField{Field: field, Msg: "length must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max)}
	}
	return nil
}

func Email(field, value string) *ErrField {
	if !emailRe.MatchString(value) {
		return &ErrField{Field: field, Msg: "must be a valid email"}
	}
	return nil
}

// Registration checks an account registration body: name 3-100, valid
// email shape, password 6-100. Returns nil when everything passes.
func Registration(name, email, password string) error {
	var errs Errs
	for _, ef := range []*ErrField{
		Required("name", name),
		Length("name", name, 3, 100),
		Required("email", email),
		Email("email", email),
		Required("password", password),
		Length("password", password, 6, 100),
	} {
		if ef != nil {
			errs = append(errs, *ef)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
