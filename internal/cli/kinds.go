package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/cleanwater/internal/waterfilter"
)

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the available filter kinds",
		Long:  "List the filter kinds that can be selected with --kind, one per line.",
		Args:  cobra.NoArgs,
		// Override parent PersistentPreRunE: listing kinds needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range waterfilter.DefaultRegistry().Kinds() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), k); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
