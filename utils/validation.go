// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number looks like a dialable number
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Optional + prefix followed by 7-15 digits; local numbers may start with 0
	regex := `^\+?\d{7,15}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

var serviceTypes = []string{"cleaning", "repair", "installation", "gas_top_up"}

var serviceStatuses = []string{"pending", "in_progress", "completed", "cancelled"}

// ValidServiceType reports whether t is one of the fixed booking types.
func ValidServiceType(t string) bool {
	return contains(serviceTypes, t)
}

// ValidServiceStatus reports whether s is one of the fixed booking statuses.
func ValidServiceStatus(s string) bool {
	return contains(serviceStatuses, s)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
