package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
)

const (
	minNameLength     = 2
	maxNameLength     = 50
	maxUsernameLength = 150
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// validateSignup checks every signup field and collects all failures into
// a single ValidationError so the caller sees every problem at once.
func validateSignup(name, username, email, password string) error {
	ve := &domain.ValidationError{}

	switch n := utf8.RuneCountInString(name); {
	case name == "":
		ve.Add("name", "This field cannot be blank.")
	case n < minNameLength:
		ve.Add("name", "Ensure this value has at least 2 characters.")
	case n > maxNameLength:
		ve.Add("name", "Ensure this value has at most 50 characters.")
	}

	switch {
	case username == "":
		ve.Add("username", "This field cannot be blank.")
	case strings.Contains(username, "@"):
		ve.Add("username", "Username cannot contain @")
	case utf8.RuneCountInString(username) > maxUsernameLength:
		ve.Add("username", "Ensure this value has at most 150 characters.")
	}

	switch {
	case email == "":
		ve.Add("email", "This field cannot be blank.")
	case !emailRegex.MatchString(email):
		ve.Add("email", "Enter a valid email address.")
	}

	if password == "" {
		ve.Add("password", "This field cannot be blank.")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// validateChirp checks a chirp message before it is stored.
func validateChirp(message string) error {
	ve := &domain.ValidationError{}

	switch {
	case message == "":
		ve.Add("message", "This field cannot be blank.")
	case utf8.RuneCountInString(message) > domain.MaxChirpLength:
		ve.Add("message", "Ensure this value has at most 280 characters.")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
