// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	timeRegex  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[0-9]{7,15}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateEmail checks a standard email address pattern
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidateTimeOfDay checks a zero-padded "HH:MM" 24h time string
func ValidateTimeOfDay(value string) bool {
	return timeRegex.MatchString(value)
}
