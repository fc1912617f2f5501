// Package validation holds the per-field checks surfaced inline on the
// student form. Each function maps a candidate value to an empty string
// (valid) or a human-readable message; nothing here performs I/O.
package validation

import (
	"regexp"
	"strings"
)

// emailShape is a coarse local@domain.tld check, intentionally permissive.
// It is not RFC 5322 validation and is documented as such.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Name validates the display name: required, trimmed length in [2,50].
func Name(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "Name is required"
	}
	if len([]rune(trimmed)) < 2 || len([]rune(trimmed)) > 50 {
		return "Name must be between 2 and 50 characters"
	}
	return ""
}

// Email validates the address shape.
func Email(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Email is required"
	}
	if !emailShape.MatchString(value) {
		return "Please enter a valid email address"
	}
	return ""
}

// Courses validates the enrollment selection: at least one course id. This
// is independent of catalog capacity, which is never enforced.
func Courses(courseIDs []string) string {
	if len(courseIDs) == 0 {
		return "At least one course must be selected"
	}
	return ""
}

// Field dispatches on the form field name. Unknown fields are valid.
func Field(field, value string) string {
	switch field {
	case "name":
		return Name(value)
	case "email":
		return Email(value)
	case "courses":
		if strings.TrimSpace(value) == "" {
			return "At least one course must be selected"
		}
		return ""
	default:
		return ""
	}
}
