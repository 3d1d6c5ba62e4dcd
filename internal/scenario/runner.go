package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hupe1980/cleanwater/internal/config"
	"github.com/hupe1980/cleanwater/internal/logging"
	"github.com/hupe1980/cleanwater/internal/waterfilter"
)

// Transcript lines.
const (
	Banner          = "--- Clean-Water Plant Operations Starting ---"
	ShutdownMessage = "Session Ended. System Shutdown."
)

// Options selects the filter and the steps of a run.
type Options struct {
	Kind         string
	FilterID     string
	InitialUsage int
	Cycles       int
	// Reset sets the usage count back to zero before the efficiency check.
	Reset bool
}

// DefaultOptions returns the standard scenario: a fresh chemical filter
// CHEM-101 processed once and then reset.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig extracts the scenario settings from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Kind:         cfg.Kind,
		FilterID:     cfg.FilterID,
		InitialUsage: cfg.InitialUsage,
		Cycles:       cfg.Cycles,
		Reset:        cfg.Reset,
	}
}

// Report summarises a finished run.
type Report struct {
	Session string
	// Stages lists the stages entered, in order. The last one is always
	// StageShutdown.
	Stages     []Stage
	Kind       string
	FilterID   string
	UsageCount int
	Outcome    Outcome
	Efficiency float64
	Err        error
}

// Runner executes a scenario and writes its transcript to an io.Writer.
type Runner struct {
	out        io.Writer
	opts       Options
	registry   *waterfilter.Registry
	newSession func() string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRegistry sets the filter kind registry. The default is
// waterfilter.DefaultRegistry().
func WithRegistry(r *waterfilter.Registry) RunnerOption {
	return func(rn *Runner) {
		rn.registry = r
	}
}

// WithSessionFunc sets the session ID generator.
func WithSessionFunc(fn func() string) RunnerOption {
	return func(rn *Runner) {
		rn.newSession = fn
	}
}

// NewRunner creates a Runner writing to out.
func NewRunner(out io.Writer, opts Options, ropts ...RunnerOption) *Runner {
	r := &Runner{
		out:        out,
		opts:       opts,
		registry:   waterfilter.DefaultRegistry(),
		newSession: uuid.NewString,
	}

	for _, o := range ropts {
		o(r)
	}

	return r
}

// Run executes the scenario once. Filter failures are reported on the
// transcript and in the returned Report. The shutdown message is always the
// last line written, whichever branch was taken.
func (r *Runner) Run(ctx context.Context) (rep *Report) {
	rep = &Report{
		Session:  r.newSession(),
		Kind:     r.opts.Kind,
		FilterID: r.opts.FilterID,
	}

	logger := logging.WithSession(logging.FromContext(ctx), rep.Session)

	defer func() {
		if p := recover(); p != nil {
			logger.Error("scenario panicked", slog.Any("panic", p))

			if n := len(rep.Stages); n == 0 || rep.Stages[n-1] != StageReporting {
				r.enter(logger, rep, StageReporting)
			}

			r.fail(rep, fmt.Errorf("%v", p))
		}

		r.enter(logger, rep, StageShutdown)
		r.println()
		r.println(ShutdownMessage)
	}()

	r.enter(logger, rep, StageStart)
	r.println(Banner)
	r.println()

	f, err := r.process(logger, rep)
	if err != nil {
		r.enter(logger, rep, StageReporting)
		r.fail(rep, err)

		return rep
	}

	r.enter(logger, rep, StageEfficiencyCheck)
	r.println(fmt.Sprintf("Calculating efficiency for %s...", f.ID()))

	eff, err := f.CalculateEfficiency()

	r.enter(logger, rep, StageReporting)

	switch {
	case errors.Is(err, waterfilter.ErrDivideByZero):
		rep.Outcome = OutcomeDivideByZero
		rep.Err = err
		r.println("ERROR: " + err.Error())
	case err != nil:
		r.fail(rep, err)
	default:
		rep.Outcome = OutcomeEfficiency
		rep.Efficiency = eff
		r.println(fmt.Sprintf("Efficiency: %v%%", eff))
	}

	return rep
}

// process builds the filter and runs the configured processing cycles,
// then applies the optional usage reset.
func (r *Runner) process(logger *slog.Logger, rep *Report) (waterfilter.Filter, error) {
	r.enter(logger, rep, StageProcessing)

	f, err := r.registry.New(r.opts.Kind, r.opts.FilterID, r.opts.InitialUsage)
	if err != nil {
		return nil, err
	}

	rep.Kind = f.Kind()
	rep.UsageCount = f.UsageCount()

	for range r.opts.Cycles {
		if err := f.Process(r.out); err != nil {
			return nil, err
		}

		rep.UsageCount = f.UsageCount()
	}

	logger.Debug("filter processed",
		slog.String("kind", f.Kind()),
		slog.String("id", f.ID()),
		slog.Int("usage", f.UsageCount()),
	)

	if r.opts.Reset {
		if err := f.SetUsageCount(0); err != nil {
			return nil, err
		}

		rep.UsageCount = 0
	}

	return f, nil
}

// fail records a general error and reports it on the transcript.
func (r *Runner) fail(rep *Report, err error) {
	rep.Outcome = OutcomeGeneralError
	rep.Err = err
	rep.Efficiency = 0
	r.println("GENERAL ERROR: " + err.Error())
}

func (r *Runner) enter(logger *slog.Logger, rep *Report, s Stage) {
	rep.Stages = append(rep.Stages, s)
	logger.Debug("entering stage", slog.String("stage", s.String()))
}

// println writes one transcript line. Write errors are ignored: the
// transcript is best effort and the shutdown line must still be attempted.
func (r *Runner) println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}
