package waterfilter

import (
	"fmt"
	"io"
)

// KindChemical is the registry name of [ChemicalFilter].
const KindChemical = "chemical"

// ChemicalFilter neutralizes chlorine.
type ChemicalFilter struct {
	base

	chemicalLevel int
}

var _ Filter = (*ChemicalFilter)(nil)

// NewChemicalFilter creates a chemical filter. It fails with
// ErrInvalidArgument when id is blank or usage is negative.
func NewChemicalFilter(id string, usage int) (*ChemicalFilter, error) {
	b, err := newBase(id, usage)
	if err != nil {
		return nil, err
	}

	return &ChemicalFilter{base: b}, nil
}

// Kind implements Filter.
func (f *ChemicalFilter) Kind() string { return KindChemical }

// ChemicalLevel returns the stored chemical level.
func (f *ChemicalFilter) ChemicalLevel() int { return f.chemicalLevel }

// SetChemicalLevel stores the chemical level. Any value is accepted.
func (f *ChemicalFilter) SetChemicalLevel(level int) { f.chemicalLevel = level }

// Process implements Filter.
func (f *ChemicalFilter) Process(w io.Writer) error {
	return f.cycle(w, fmt.Sprintf("[Chemical Filter %s] is neutralizing chlorine levels. Usage increased.", f.id))
}
