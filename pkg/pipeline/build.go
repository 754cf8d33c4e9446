package pipeline

import (
	"github.com/matzehuels/hasse/pkg/errors"
	"github.com/matzehuels/hasse/pkg/poset"
)

// BuildPoset constructs the poset selected by opts: a bundled example, a
// divisibility poset over opts.Numbers, or opts.Elements with opts.Relations.
//
// The distinct element count is checked against opts.MaxElements; a zero
// limit uses [DefaultMaxElements] and a negative one disables the check.
func BuildPoset(opts Options) (*poset.Poset, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, err
	}

	var (
		p   *poset.Poset
		err error
	)
	switch opts.Source() {
	case SourceExample:
		ex, lookupErr := poset.ExampleByName(opts.Example)
		if lookupErr != nil {
			return nil, lookupErr
		}
		p, err = ex.Build()
	case SourceDivisibility:
		p, err = poset.GenerateDivisibility(opts.Numbers)
	default:
		p, err = poset.ParseInput(opts.Elements, opts.Relations)
	}
	if err != nil {
		return nil, err
	}

	if err := errors.ValidateElementCount(len(p.Distinct()), opts.MaxElements); err != nil {
		return nil, err
	}
	return p, nil
}
