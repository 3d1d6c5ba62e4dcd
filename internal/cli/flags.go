package cli

import (
	"github.com/spf13/pflag"

	"github.com/hupe1980/cleanwater/internal/config"
)

// registerScenarioFlags adds the scenario selection flags. They are
// persistent so that the config subcommand reflects them.
func registerScenarioFlags(f *pflag.FlagSet) {
	f.String("kind", config.DefaultKind, "filter kind to build (see 'cleanwater kinds')")
	f.String("filter-id", config.DefaultFilterID, "identifier of the filter")
	f.Int("initial-usage", config.DefaultInitialUsage, "usage count the filter starts with")
	f.Int("cycles", config.DefaultCycles, "number of processing cycles")
	f.Bool("reset", config.DefaultReset, "reset the usage count before the efficiency check")
}
