package poset

import (
	"strconv"
	"strings"

	"github.com/matzehuels/hasse/pkg/errors"
)

// GenerateDivisibility builds the divisibility poset over a comma-separated
// list of positive integers.
//
// Elements are the canonical decimal forms of the numbers in input order
// ("007" becomes "7"). The relations are every pair (a, b) of list entries
// with a ≠ b and b mod a = 0, enumerated in input order; they are not
// reduced. Repeated numbers are kept, and equal values are never related.
//
// Tokens that are not positive integers yield INVALID_NUMBER; an empty list
// yields EMPTY_INPUT.
func GenerateDivisibility(numbersText string) (*Poset, error) {
	numbers, err := ParseNumbers(numbersText)
	if err != nil {
		return nil, err
	}
	return Divisibility(numbers), nil
}

// ParseNumbers parses a comma-separated list of positive integers.
// Empty tokens are skipped.
func ParseNumbers(text string) ([]uint64, error) {
	var numbers []uint64
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.ParseUint(tok, 10, 64)
		if err != nil || n == 0 {
			return nil, errors.New(errors.ErrCodeInvalidNumber, "invalid number %q: must be a positive integer", tok)
		}
		numbers = append(numbers, n)
	}
	if len(numbers) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no numbers given")
	}
	return numbers, nil
}

// Divisibility builds the divisibility poset over numbers.
// All numbers must be positive.
func Divisibility(numbers []uint64) *Poset {
	p := &Poset{Elements: make([]string, len(numbers))}
	for i, n := range numbers {
		p.Elements[i] = strconv.FormatUint(n, 10)
	}
	for i, a := range numbers {
		for j, b := range numbers {
			if a != b && b%a == 0 {
				p.Relations = append(p.Relations, Relation{Lower: p.Elements[i], Upper: p.Elements[j]})
			}
		}
	}
	return p
}
