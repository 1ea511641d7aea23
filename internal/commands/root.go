package commands

import (
	"github.com/spf13/cobra"

	"github.com/wrenkit/wren"
	"github.com/wrenkit/wren/internal/output"
)

// RootCmd creates and returns the root command for the wren CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "wren",
		Short: "Config renderer for the C unit-test toolchain",
		Long: `Wren renders the configuration files your C unit-test toolchain consumes.

From a single wren.yml it produces:
• cmock.yml  - YAML configuration for the CMock mock generator
• gcovr.cfg  - directives for the gcovr coverage reporter

Rendering is deterministic: the same wren.yml always produces
byte-identical output, so generated configs diff cleanly.`,
		Version: wren.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
