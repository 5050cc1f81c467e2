package auth

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	lowerRe   = regexp.MustCompile(`[a-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// ValidatePassword enforces at least 8 characters with lower, upper, digit
// and special characters.
func ValidatePassword(pw string) error {
	switch {
	case len(pw) < 8:
		return errors.New("password must be at least 8 characters")
	case !lowerRe.MatchString(pw):
		return errors.New("password must contain a lowercase letter")
	case !upperRe.MatchString(pw):
		return errors.New("password must contain an uppercase letter")
	case !digitRe.MatchString(pw):
		return errors.New("password must contain a digit")
	case !specialRe.MatchString(pw):
		return errors.New("password must contain a special character")
	}
	return nil
}
