package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/cleanwater/internal/version"
	"github.com/hupe1980/cleanwater/internal/waterfilter"
)

// versionReport is build metadata plus the filter kinds compiled into the
// binary.
type versionReport struct {
	version.Info
	FilterKinds []string `json:"filterKinds"`
}

func newVersionReport() versionReport {
	return versionReport{
		Info:        version.GetInfo(),
		FilterKinds: waterfilter.DefaultRegistry().Kinds(),
	}
}

func (r versionReport) text() string {
	return fmt.Sprintf("%s\nfilter kinds: %s", r.Info.String(), strings.Join(r.FilterKinds, ", "))
}

func newVersionCommand() *cobra.Command {
	var (
		jsonOutput bool
		short      bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Display the cleanwater version, git commit, build date, Go version,
platform, and the filter kinds this build can run.`,
		Args: cobra.NoArgs,
		// Needs no config: a broken .cleanwater.yaml must not hide the version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep := newVersionReport()
			w := cmd.OutOrStdout()

			switch {
			case short:
				_, err := fmt.Fprintln(w, rep.Version)

				return err
			case jsonOutput:
				data, err := json.MarshalIndent(rep, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version report: %w", err)
				}

				_, err = fmt.Fprintln(w, string(data))

				return err
			default:
				_, err := fmt.Fprintln(w, rep.text())

				return err
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output version info as JSON")
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	cmd.MarkFlagsMutuallyExclusive("json", "short")

	return cmd
}
