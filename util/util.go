package util

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

// HashPassword takes a plain-text password and returns a hashed password.
func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return hash, nil
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password string, hash []byte) bool {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	return err == nil
}

// ValidateUsername checks the login against the allowed character set:
// letters, digits and .@+- only, at most 150 characters.
func ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username must not be empty")
	}
	if len(username) > 150 {
		return errors.New("username must be at most 150 characters")
	}
	if !usernameRe.MatchString(username) {
		return errors.New("username may contain only letters, digits and .@+- characters")
	}
	return nil
}

// ValidatePassword checks if a password meets the required security criteria.
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > 150 {
		return errors.New("password must be between 8 and 150 characters")
	}
	if !hasLetter(password) {
		return errors.New("password must contain at least one letter")
	}
	if !hasDigit(password) {
		return errors.New("password must contain at least one digit")
	}
	if strings.Contains(password, " ") {
		return errors.New("password must not contain spaces")
	}
	return nil
}

func hasLetter(password string) bool {
	for _, char := range password {
		if unicode.IsLetter(char) {
			return true
		}
	}
	return false
}

func hasDigit(password string) bool {
	for _, char := range password {
		if unicode.IsDigit(char) {
			return true
		}
	}
	return false
}
