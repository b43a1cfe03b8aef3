package errors

import (
	"strings"
	"unicode"
)

// ValidateName validates a platform, project or component set name before
// it is sent to the backend. kind is used in the message ("platform", ...).
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators (names become URL path segments)
//   - Maximum length of 256 characters
func ValidateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "empty %s name", kind)
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "%s name too long (max 256 characters)", kind)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name contains invalid control characters", kind)
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "%s name cannot contain path separators", kind)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
