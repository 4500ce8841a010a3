package campaigns

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"go.miloapis.com/outreach-provider-heyreach/internal/cli"
	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

// CreateCampaignsCommand returns the campaigns command group.
func CreateCampaignsCommand(opts *cli.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Manage HeyReach campaigns",
	}

	cmd.AddCommand(
		newListCommand(opts),
		newGetCommand(opts),
		newStateCommand(opts, "pause", "Pause a running campaign", heyreach.API.PauseCampaign),
		newStateCommand(opts, "resume", "Resume a paused campaign", heyreach.API.ResumeCampaign),
		newAddLeadsCommand(opts, false),
		newAddLeadsCommand(opts, true),
	)

	return cmd
}

func newListCommand(opts *cli.Options) *cobra.Command {
	var (
		page       cli.PageFlags
		statuses   []string
		accountIDs []uint
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := heyreach.CampaignFilter{
				Offset:  page.Offset,
				Limit:   page.Limit,
				Keyword: page.Keyword,
			}
			for _, s := range statuses {
				status := heyreach.ParseCampaignStatus(s)
				if status == heyreach.CampaignStatusUnknown {
					return fmt.Errorf("unknown campaign status %q", s)
				}
				filter.Statuses = append(filter.Statuses, status)
			}
			ids, err := cli.Uint32s("account id", accountIDs)
			if err != nil {
				return err
			}
			filter.AccountIDs = ids

			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := client.GetCampaigns(cmd.Context(), apiKey, filter)
			if err != nil {
				return fmt.Errorf("failed to list campaigns: %w", err)
			}
			return opts.Print(result)
		},
	}

	page.AddFlags(cmd.Flags(), true)
	cmd.Flags().StringSliceVar(&statuses, "status", nil,
		"Only return campaigns in these states (draft, active, paused, finished, canceled)")
	cmd.Flags().UintSliceVar(&accountIDs, "account-id", nil, "Only return campaigns using these LinkedIn accounts")

	return cmd
}

func newGetCommand(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get CAMPAIGN_ID",
		Short: "Get a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID, err := cli.ParseID("campaign id", args[0])
			if err != nil {
				return err
			}
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			campaign, err := client.GetCampaign(cmd.Context(), apiKey, campaignID)
			if err != nil {
				return fmt.Errorf("failed to get campaign %d: %w", campaignID, err)
			}
			return opts.Print(campaign)
		},
	}
}

type stateChange func(heyreach.API, context.Context, string, uint64) error

func newStateCommand(opts *cli.Options, verb, short string, change stateChange) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " CAMPAIGN_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID, err := cli.ParseID("campaign id", args[0])
			if err != nil {
				return err
			}
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			if err := change(client, cmd.Context(), apiKey, campaignID); err != nil {
				return fmt.Errorf("failed to %s campaign %d: %w", verb, campaignID, err)
			}
			return nil
		},
	}
}

type addedCount struct {
	AddedLeadsCount uint32 `json:"added_leads_count"`
}

func newAddLeadsCommand(opts *cli.Options, v2 bool) *cobra.Command {
	var file string

	use, short := "add-leads", "Add leads to a campaign and print how many were added"
	if v2 {
		use, short = "add-leads-v2", "Add leads to a campaign and print added, updated and failed counts"
	}

	cmd := &cobra.Command{
		Use:   use + " CAMPAIGN_ID",
		Short: short,
		Long: short + ".\n\nThe file holds a JSON or YAML list of entries with an optional " +
			"linkedin_account_id and a lead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID, err := cli.ParseID("campaign id", args[0])
			if err != nil {
				return err
			}
			pairs, err := cli.ReadList[heyreach.AccountLeadPair](file, opts.In)
			if err != nil {
				return err
			}
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}

			req := heyreach.CampaignAddLeadsRequest{CampaignID: campaignID, AccountLeadPairs: pairs}
			if v2 {
				result, err := client.AddLeadsToCampaignV2(cmd.Context(), apiKey, req)
				if err != nil {
					return fmt.Errorf("failed to add leads to campaign %d: %w", campaignID, err)
				}
				return opts.Print(result)
			}

			added, err := client.AddLeadsToCampaign(cmd.Context(), apiKey, req)
			if err != nil {
				return fmt.Errorf("failed to add leads to campaign %d: %w", campaignID, err)
			}
			return opts.Print(addedCount{AddedLeadsCount: added})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON or YAML file with account/lead pairs, - for stdin")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
