package poset

import (
	"fmt"

	"github.com/matzehuels/hasse/pkg/core/dag"
	"github.com/matzehuels/hasse/pkg/errors"
)

// Relation declares that Lower is below Upper.
type Relation struct {
	Lower string `json:"lower"`
	Upper string `json:"upper"`
}

// String returns the "Lower < Upper" form of the relation.
func (r Relation) String() string { return r.Lower + " < " + r.Upper }

// Poset is a finite set of elements with a declared "below" relation.
//
// Elements keeps duplicates exactly as they were typed. Every relation
// endpoint is guaranteed to be in Elements when the Poset was produced by
// one of the builders in this package.
type Poset struct {
	Elements  []string   `json:"elements"`
	Relations []Relation `json:"relations"`
}

// Distinct returns the elements without duplicates, in first-occurrence
// order.
func (p *Poset) Distinct() []string {
	seen := make(map[string]bool, len(p.Elements))
	out := make([]string, 0, len(p.Elements))
	for _, e := range p.Elements {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

// Validate checks that the poset is well formed: element identifiers are
// valid and every relation endpoint is a declared element. Posets decoded
// from JSON should be validated before use.
func (p *Poset) Validate() error {
	members := make(map[string]bool, len(p.Elements))
	for _, e := range p.Elements {
		if err := errors.ValidateElementID(e); err != nil {
			return err
		}
		members[e] = true
	}
	for _, r := range p.Relations {
		if err := checkMembers(members, r); err != nil {
			return err
		}
	}
	return nil
}

// DAG converts the poset into a graph with one node per distinct element
// and one edge per distinct relation, both in declaration order.
//
// Reflexive relations (a < a) carry no order information and are skipped;
// repeated relations collapse into one edge. A relation with an undeclared
// endpoint yields an UNKNOWN_ELEMENT error.
func (p *Poset) DAG() (*dag.DAG, error) {
	g := dag.New()
	for _, e := range p.Distinct() {
		if err := g.AddNode(dag.Node{ID: e}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "element %q", e)
		}
	}
	for _, r := range p.Relations {
		if r.Lower == r.Upper {
			if _, ok := g.Node(r.Lower); ok {
				continue
			}
		}
		if g.HasEdge(r.Lower, r.Upper) {
			continue
		}
		if err := g.AddEdge(dag.Edge{From: r.Lower, To: r.Upper}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnknownElement, err, "unknown element in relation %q", r.String())
		}
	}
	return g, nil
}

// Clone returns a deep copy of the poset.
func (p *Poset) Clone() *Poset {
	return &Poset{
		Elements:  append([]string(nil), p.Elements...),
		Relations: append([]Relation(nil), p.Relations...),
	}
}

func checkMembers(members map[string]bool, r Relation) error {
	for _, end := range []string{r.Lower, r.Upper} {
		if !members[end] {
			return errors.New(errors.ErrCodeUnknownElement, "unknown element in relation: %q", end)
		}
	}
	return nil
}

func (p *Poset) String() string {
	return fmt.Sprintf("poset(%d elements, %d relations)", len(p.Elements), len(p.Relations))
}
