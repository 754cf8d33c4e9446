package poset

import (
	"regexp"
	"strings"

	"github.com/matzehuels/hasse/pkg/errors"
)

// relationForm is one accepted surface syntax for a relation line.
type relationForm struct {
	name    string
	pattern *regexp.Regexp
}

// relationForms are tried in order; the first match wins.
var relationForms = []relationForm{
	{name: "less-than", pattern: regexp.MustCompile(`^\s*(.+?)\s*<\s*(.+?)\s*$`)},
	{name: "pair", pattern: regexp.MustCompile(`^\s*([^,]+?)\s*,\s*([^,]+?)\s*$`)},
}

// ParseInput builds a Poset from a comma-separated element list and a
// newline-separated relation list.
//
// Elements are trimmed and empty tokens dropped; duplicates are kept. An
// element list with no tokens yields EMPTY_INPUT. Relation lines must have
// the form "A < B" or "A,B"; blank lines are ignored. Other lines yield
// INVALID_FORMAT with the offending line number, and relations naming an
// undeclared element yield UNKNOWN_ELEMENT.
func ParseInput(elementsText, relationsText string) (*Poset, error) {
	elements, err := ParseElements(elementsText)
	if err != nil {
		return nil, err
	}

	members := make(map[string]bool, len(elements))
	for _, e := range elements {
		members[e] = true
	}

	relations, err := ParseRelations(relationsText)
	if err != nil {
		return nil, err
	}
	for _, r := range relations {
		if err := checkMembers(members, r); err != nil {
			return nil, err
		}
	}

	return &Poset{Elements: elements, Relations: relations}, nil
}

// ParseElements splits a comma-separated element list.
func ParseElements(text string) ([]string, error) {
	var elements []string
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if err := errors.ValidateElementID(tok); err != nil {
			return nil, err
		}
		elements = append(elements, tok)
	}
	if len(elements) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no elements given")
	}
	return elements, nil
}

// ParseRelations parses one relation per line. It does not check that the
// endpoints exist; see [ParseInput].
func ParseRelations(text string) ([]Relation, error) {
	var relations []Relation
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, ok := parseRelation(line)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"Invalid relation format on line %d: %q (use \"A < B\" or \"A,B\")", i+1, strings.TrimSpace(line))
		}
		relations = append(relations, r)
	}
	return relations, nil
}

func parseRelation(line string) (Relation, bool) {
	line = strings.TrimSuffix(line, "\r")
	for _, form := range relationForms {
		if m := form.pattern.FindStringSubmatch(line); m != nil {
			return Relation{Lower: m[1], Upper: m[2]}, true
		}
	}
	return Relation{}, false
}
