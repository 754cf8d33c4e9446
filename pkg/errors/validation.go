package errors

import (
	"math"
	"unicode"
)

// MaxElementIDLength bounds the length of a single element identifier.
const MaxElementIDLength = 256

// Layout names accepted by ValidateLayoutType.
const (
	LayoutHierarchical = "hierarchical"
	LayoutCircular     = "circular"
)

// ValidateElementID validates a poset element identifier.
//
// The rules are deliberately small:
//   - No empty identifiers
//   - No control characters (newlines would break the relation grammar)
//   - Maximum length of 256 bytes
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "element identifier cannot be empty")
	}

	if len(id) > MaxElementIDLength {
		return New(ErrCodeInvalidInput, "element identifier too long (max %d characters)", MaxElementIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "element identifier %q contains control characters", id)
		}
	}

	return nil
}

// ValidateLayoutType checks that name is one of the supported layout strategies.
func ValidateLayoutType(name string) error {
	switch name {
	case LayoutHierarchical, LayoutCircular:
		return nil
	}
	return New(ErrCodeInvalidLayout, "invalid layout type: %q (must be one of: hierarchical, circular)", name)
}

// ValidateLevelHeight checks that the vertical distance between levels is a
// finite, strictly positive number.
func ValidateLevelHeight(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return New(ErrCodeInvalidLayout, "level height must be a finite number")
	}
	if h <= 0 {
		return New(ErrCodeInvalidLayout, "level height must be positive, got %g", h)
	}
	return nil
}

// ValidateElementCount rejects element sets larger than limit.
// A limit of zero or less disables the check.
func ValidateElementCount(n, limit int) error {
	if limit > 0 && n > limit {
		return New(ErrCodeTooLarge, "too many elements: %d (max %d)", n, limit)
	}
	return nil
}
