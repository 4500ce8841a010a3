package accounts

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.miloapis.com/outreach-provider-heyreach/internal/cli"
	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

// CreateAccountsCommand returns the accounts command group.
func CreateAccountsCommand(opts *cli.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect LinkedIn sender accounts",
	}

	var page cli.PageFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List LinkedIn sender accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := client.GetLinkedInAccounts(cmd.Context(), apiKey, heyreach.LinkedInAccountFilter{
				Offset:  page.Offset,
				Limit:   page.Limit,
				Keyword: page.Keyword,
			})
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}
			return opts.Print(result)
		},
	}
	page.AddFlags(list.Flags(), true)

	cmd.AddCommand(list)
	return cmd
}
