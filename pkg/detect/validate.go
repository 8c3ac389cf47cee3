package detect

import (
	"strings"
	"unicode/utf8"
)

// Input gates enforced by the calling boundary. The detector itself never
// rejects short text (it dampens instead); these stricter minimums keep
// unreliable verdicts from being served at all.
const (
	MinChars = 10
	MinWords = 20
)

// ValidationError reports a client-input rejection. The message is meant
// to be returned to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateInput applies the boundary gates to already-trimmed text.
func ValidateInput(text string) error {
	if text == "" {
		return &ValidationError{Message: "Text cannot be empty"}
	}
	if utf8.RuneCountInString(text) < MinChars {
		return &ValidationError{Message: "Text too short for analysis (minimum 10 characters)"}
	}
	if len(strings.Fields(text)) < MinWords {
		return &ValidationError{Message: "Text is too short for reliable detection. Please provide at least 20 words (50+ words recommended for best accuracy)"}
	}
	return nil
}
