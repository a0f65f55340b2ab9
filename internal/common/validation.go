package common

import (
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// FlowerTypes and ColorThemes are the choices the client offers. Extensible:
// append here and the validators pick the new value up.
var FlowerTypes = []string{"roses", "tulips", "lilies", "sunflowers"}

var ColorThemes = []string{"romantic-red", "soft-pink", "pure-white", "sunny-yellow", "lavender-dream"}

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 50 {
		return NewValidationError("username", "username must be between 3 and 50 characters")
	}

	if !usernameRegex.MatchString(username) {
		return NewValidationError("username", "username can only contain letters, numbers, and underscores")
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return NewValidationError("password", "password must be at least 6 characters long")
	}

	if len(password) > 100 {
		return NewValidationError("password", "password is too long")
	}

	return nil
}

func ValidateOccasion(occasion string) error {
	if strings.TrimSpace(occasion) == "" {
		return NewValidationError("occasion", "occasion is required")
	}
	return nil
}

func ValidateFlowerType(flowerType string) error {
	if contains(FlowerTypes, flowerType) {
		return nil
	}
	return NewValidationError("flowerType", "unknown flower type")
}

func ValidateColorTheme(colorTheme string) error {
	if contains(ColorThemes, colorTheme) {
		return nil
	}
	return NewValidationError("colorTheme", "unknown color theme")
}

func ValidateSenderName(senderName string) error {
	if strings.TrimSpace(senderName) == "" {
		return NewValidationError("senderName", "sender name is required")
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
