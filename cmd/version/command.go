package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.miloapis.com/outreach-provider-heyreach/internal/printer"
	"go.miloapis.com/outreach-provider-heyreach/pkg/version"
)

// NewVersionCommand creates the version subcommand
func NewVersionCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print version information for heyreach",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runVersion(cmd *cobra.Command, output string) error {
	versionInfo := version.Get()

	if output == "text" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), versionInfo.String())
		return err
	}

	format, err := printer.ParseFormat(output)
	if err != nil {
		return err
	}
	return printer.Print(cmd.OutOrStdout(), format, versionInfo)
}
