package waterfilter

import (
	"fmt"
	"io"
)

// KindCarbon is the registry name of [CarbonFilter].
const KindCarbon = "carbon"

// CarbonFilter traps physical debris.
type CarbonFilter struct {
	base

	physicalDebrisLevel int
}

var _ Filter = (*CarbonFilter)(nil)

// NewCarbonFilter creates a carbon filter. It fails with ErrInvalidArgument
// when id is blank or usage is negative.
func NewCarbonFilter(id string, usage int) (*CarbonFilter, error) {
	b, err := newBase(id, usage)
	if err != nil {
		return nil, err
	}

	return &CarbonFilter{base: b}, nil
}

// Kind implements Filter.
func (f *CarbonFilter) Kind() string { return KindCarbon }

// PhysicalDebrisLevel returns the stored debris level.
func (f *CarbonFilter) PhysicalDebrisLevel() int { return f.physicalDebrisLevel }

// SetPhysicalDebrisLevel stores the debris level. Any value is accepted.
func (f *CarbonFilter) SetPhysicalDebrisLevel(level int) { f.physicalDebrisLevel = level }

// Process implements Filter.
func (f *CarbonFilter) Process(w io.Writer) error {
	return f.cycle(w, fmt.Sprintf("[Carbon Filter %s] is trapping physical debris. Usage increased.", f.id))
}
