package poset

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hasse/pkg/errors"
)

//go:embed examples.toml
var examplesTOML []byte

// Example is a named, bundled poset definition.
//
// An example is either free-form (Elements and Relations are set) or a
// divisibility example (Numbers is set).
type Example struct {
	Name        string `toml:"name" json:"name"`
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
	Elements    string `toml:"elements" json:"elements,omitempty"`
	Relations   string `toml:"relations" json:"relations,omitempty"`
	Numbers     string `toml:"numbers" json:"numbers,omitempty"`
}

// IsDivisibility reports whether the example is a divisibility poset.
func (e Example) IsDivisibility() bool { return e.Numbers != "" }

// Build constructs the example's poset with the regular builders.
func (e Example) Build() (*Poset, error) {
	if e.IsDivisibility() {
		return GenerateDivisibility(e.Numbers)
	}
	return ParseInput(e.Elements, e.Relations)
}

type exampleFile struct {
	Example []Example `toml:"example"`
}

var bundled = mustLoadExamples(examplesTOML)

func mustLoadExamples(data []byte) []Example {
	examples, err := loadExamples(data)
	if err != nil {
		panic(fmt.Sprintf("poset: bundled examples: %v", err))
	}
	return examples
}

func loadExamples(data []byte) ([]Example, error) {
	var f exampleFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode examples: %w", err)
	}
	for _, e := range f.Example {
		if e.Name == "" {
			return nil, fmt.Errorf("example without name")
		}
		if _, err := e.Build(); err != nil {
			return nil, fmt.Errorf("example %s: %w", e.Name, err)
		}
	}
	return f.Example, nil
}

// Examples returns a copy of the bundled example table.
func Examples() []Example {
	return slices.Clone(bundled)
}

// ExampleNames returns the names of all bundled examples in table order.
func ExampleNames() []string {
	names := make([]string, len(bundled))
	for i, e := range bundled {
		names[i] = e.Name
	}
	return names
}

// ExampleByName looks up a bundled example. Unknown names yield NOT_FOUND.
func ExampleByName(name string) (Example, error) {
	for _, e := range bundled {
		if e.Name == name {
			return e, nil
		}
	}
	return Example{}, errors.New(errors.ErrCodeNotFound, "unknown example %q (available: %v)", name, ExampleNames())
}
