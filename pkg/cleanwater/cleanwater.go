// Package cleanwater provides a public Go API for running the clean-water
// plant scenario and for building water filters.
//
// Basic usage:
//
//	result, err := cleanwater.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Transcript)
//
// With options:
//
//	result, err := cleanwater.Run(ctx,
//	    cleanwater.WithKind("carbon"),
//	    cleanwater.WithFilterID("CARB-7"),
//	    cleanwater.WithCycles(3),
//	    cleanwater.WithoutReset(),
//	)
package cleanwater

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/hupe1980/cleanwater/internal/logging"
	"github.com/hupe1980/cleanwater/internal/scenario"
	"github.com/hupe1980/cleanwater/internal/waterfilter"
)

// Filter is a water filter with a validated identity and usage counter.
type Filter = waterfilter.Filter

// Error classes returned by filters.
var (
	ErrInvalidArgument = waterfilter.ErrInvalidArgument
	ErrDivideByZero    = waterfilter.ErrDivideByZero
)

// Filter kinds.
const (
	KindCarbon   = waterfilter.KindCarbon
	KindChemical = waterfilter.KindChemical
)

// NewFilter creates a filter of the given kind.
func NewFilter(kind, id string, usage int) (Filter, error) {
	return waterfilter.DefaultRegistry().New(kind, id, usage)
}

// Kinds returns the names of the available filter kinds.
func Kinds() []string {
	return waterfilter.DefaultRegistry().Kinds()
}

// Option configures a scenario run.
// Use the With* functions to create Options.
type Option func(*options)

type options struct {
	scenario scenario.Options
	out      io.Writer
	logger   *slog.Logger
}

// WithKind sets the filter kind (default: "chemical").
func WithKind(kind string) Option { return func(o *options) { o.scenario.Kind = kind } }

// WithFilterID sets the filter identifier (default: "CHEM-101").
func WithFilterID(id string) Option { return func(o *options) { o.scenario.FilterID = id } }

// WithInitialUsage sets the usage count the filter starts with (default: 0).
func WithInitialUsage(n int) Option { return func(o *options) { o.scenario.InitialUsage = n } }

// WithCycles sets the number of processing cycles (default: 1).
func WithCycles(n int) Option { return func(o *options) { o.scenario.Cycles = n } }

// WithoutReset keeps the usage count before the efficiency check instead of
// resetting it to zero.
func WithoutReset() Option { return func(o *options) { o.scenario.Reset = false } }

// WithOutput additionally streams the transcript to w.
func WithOutput(w io.Writer) Option { return func(o *options) { o.out = w } }

// WithLogger sets the logger for diagnostics (default: discard). A nil
// logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Result holds the outcome of a scenario run.
type Result struct {
	// Session is the unique ID of the run.
	Session string

	Kind       string
	FilterID   string
	UsageCount int

	// Outcome is one of "efficiency", "divide-by-zero", "general-error".
	Outcome string

	// Efficiency is set when Outcome is "efficiency".
	Efficiency float64

	// Err is the failure reported on the transcript, if any.
	Err error

	// Transcript is the full text the scenario printed.
	Transcript string
}

// Run executes the scenario once. Scenario failures are reported in the
// Result; the returned error is only set for invalid options.
func Run(ctx context.Context, opts ...Option) (*Result, error) {
	o := &options{
		scenario: scenario.DefaultOptions(),
		logger:   logging.Discard(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.scenario.Cycles < 0 {
		return nil, errors.New("cycles must not be negative")
	}

	var buf bytes.Buffer

	var w io.Writer = &buf
	if o.out != nil {
		w = io.MultiWriter(&buf, o.out)
	}

	ctx = logging.NewContext(ctx, o.logger)
	rep := scenario.NewRunner(w, o.scenario).Run(ctx)

	return &Result{
		Session:    rep.Session,
		Kind:       rep.Kind,
		FilterID:   rep.FilterID,
		UsageCount: rep.UsageCount,
		Outcome:    rep.Outcome.String(),
		Efficiency: rep.Efficiency,
		Err:        rep.Err,
		Transcript: buf.String(),
	}, nil
}
