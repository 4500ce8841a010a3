package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.miloapis.com/outreach-provider-heyreach/internal/cli"
)

type keyStatus struct {
	Valid bool `json:"valid"`
}

// CreateAuthCommand returns the auth command group.
func CreateAuthCommand(opts *cli.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Check HeyReach credentials",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Verify that HeyReach accepts the API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			if err := client.CheckAPIKey(cmd.Context(), apiKey); err != nil {
				return fmt.Errorf("api key check failed: %w", err)
			}
			return opts.Print(keyStatus{Valid: true})
		},
	})

	return cmd
}
