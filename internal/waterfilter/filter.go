package waterfilter

import (
	"fmt"
	"io"
)

// PlaceholderEfficiency is the efficiency percentage reported for any filter
// that has processed water. It does not depend on kind or usage.
const PlaceholderEfficiency = 95.5

// Filter is a water filter with a validated identity and usage counter.
type Filter interface {
	// Kind returns the registry name of the filter kind.
	Kind() string

	ID() string
	SetID(id string) error

	UsageCount() int
	SetUsageCount(n int) error

	// Process runs one processing cycle: it writes a status line to w and
	// increments the usage count by one. The count is left unchanged when
	// the status line cannot be written.
	Process(w io.Writer) error

	// CalculateEfficiency returns the filter efficiency in percent. It fails
	// with ErrDivideByZero when no water has passed through the filter.
	CalculateEfficiency() (float64, error)
}

// base holds the state shared by all filter kinds. Fields are only changed
// through the validating setters.
type base struct {
	id         string
	usageCount int
}

func newBase(id string, initialUsage int) (base, error) {
	var b base

	if err := b.SetID(id); err != nil {
		return base{}, err
	}

	if err := b.SetUsageCount(initialUsage); err != nil {
		return base{}, err
	}

	return b, nil
}

// ID returns the filter identifier.
func (b *base) ID() string { return b.id }

// SetID replaces the identifier. Empty or whitespace-only IDs are rejected
// with ErrInvalidArgument.
func (b *base) SetID(id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	b.id = id

	return nil
}

// UsageCount returns the number of processing cycles run so far.
func (b *base) UsageCount() int { return b.usageCount }

// SetUsageCount replaces the usage count. Negative values are rejected with
// ErrInvalidArgument.
func (b *base) SetUsageCount(n int) error {
	if err := validateUsageCount(n); err != nil {
		return err
	}

	b.usageCount = n

	return nil
}

// CalculateEfficiency is the default efficiency calculation.
func (b *base) CalculateEfficiency() (float64, error) {
	if b.usageCount == 0 {
		return 0, &Error{
			Kind: ErrDivideByZero,
			Msg:  "cannot calculate efficiency: no water has passed through this filter yet",
		}
	}

	return PlaceholderEfficiency, nil
}

// cycle writes the status line and records one use.
func (b *base) cycle(w io.Writer, status string) error {
	if _, err := fmt.Fprintln(w, status); err != nil {
		return fmt.Errorf("writing status of filter %s: %w", b.id, err)
	}

	return b.SetUsageCount(b.usageCount + 1)
}
