package validator

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	digitRegexp   = regexp.MustCompile(`[0-9]`)
	lowerRegexp   = regexp.MustCompile(`[a-z]`)
	upperRegexp   = regexp.MustCompile(`[A-Z]`)
	specialRegexp = regexp.MustCompile(`[\W_]`)
)

func ValidateString(value string, minLength int, maxLength int) error {
	n := utf8.RuneCountInString(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}

	return nil
}

func ValidatePassword(value string) error {
	err := errors.New("value must be between 8 and 30 characters long, contain at least one digit, one lowercase letter, one uppercase letter, and one special character")

	if len(value) < 8 || len(value) > 30 {
		return err
	}
	if !digitRegexp.MatchString(value) ||
		!lowerRegexp.MatchString(value) ||
		!upperRegexp.MatchString(value) ||
		!specialRegexp.MatchString(value) {
		return err
	}

	return nil
}

func ValidateEmail(value string) error {
	if err := ValidateString(value, 6, 200); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("is not a valid email address")
	}

	return nil
}

func ValidateFullName(value string) error {
	return ValidateString(strings.TrimSpace(value), 2, 100)
}

// ValidateCompanyName checks the name shown to other bidders as the bidder label.
func ValidateCompanyName(value string) error {
	return ValidateString(strings.TrimSpace(value), 2, 150)
}
