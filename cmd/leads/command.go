package leads

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.miloapis.com/outreach-provider-heyreach/internal/cli"
	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

// CreateLeadsCommand returns the leads command group.
func CreateLeadsCommand(opts *cli.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Inspect and tag HeyReach leads",
	}

	cmd.AddCommand(
		newGetCommand(opts),
		newListsCommand(opts),
		newTagsCommand(opts),
		newReplaceTagsCommand(opts),
	)

	return cmd
}

func newGetCommand(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get PROFILE_URL",
		Short: "Get a lead by LinkedIn profile URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			lead, err := client.GetLead(cmd.Context(), apiKey, args[0])
			if err != nil {
				return fmt.Errorf("failed to get lead: %w", err)
			}
			return opts.Print(lead)
		},
	}
}

func newListsCommand(opts *cli.Options) *cobra.Command {
	var (
		page cli.PageFlags
		req  heyreach.LeadListsRequest
	)

	cmd := &cobra.Command{
		Use:   "lists",
		Short: "List the lists a lead belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Offset = page.Offset
			req.Limit = page.Limit

			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := client.GetListsForLead(cmd.Context(), apiKey, req)
			if err != nil {
				return fmt.Errorf("failed to list lists for lead: %w", err)
			}
			return opts.Print(result)
		},
	}

	page.AddFlags(cmd.Flags(), false)
	cmd.Flags().StringVar(&req.Email, "email", "", "Lead email address")
	cmd.Flags().StringVar(&req.LinkedInID, "linkedin-id", "", "Lead LinkedIn member id")
	cmd.Flags().StringVar(&req.ProfileURL, "profile-url", "", "Lead LinkedIn profile URL")
	cmd.MarkFlagsOneRequired("email", "linkedin-id", "profile-url")

	return cmd
}

func newTagsCommand(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tags PROFILE_URL",
		Short: "List the tags of a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			tags, err := client.GetLeadTags(cmd.Context(), apiKey, args[0])
			if err != nil {
				return fmt.Errorf("failed to get lead tags: %w", err)
			}
			return opts.Print(tags)
		},
	}
}

func newReplaceTagsCommand(opts *cli.Options) *cobra.Command {
	var req heyreach.ReplaceTagsRequest

	cmd := &cobra.Command{
		Use:   "replace-tags",
		Short: "Replace every tag of a lead",
		Long: "Replace every tag of a lead and print the tags HeyReach assigned.\n\n" +
			"Tags the workspace does not know are dropped unless --create-missing is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := client.ReplaceLeadTags(cmd.Context(), apiKey, req)
			if err != nil {
				return fmt.Errorf("failed to replace lead tags: %w", err)
			}
			return opts.Print(result)
		},
	}

	cmd.Flags().StringVar(&req.LeadProfileURL, "profile-url", "", "Lead LinkedIn profile URL")
	cmd.Flags().StringVar(&req.LeadLinkedInID, "linkedin-id", "", "Lead LinkedIn member id")
	cmd.Flags().StringSliceVar(&req.Tags, "tag", nil, "Tag to assign (repeatable); omit to clear all tags")
	cmd.Flags().BoolVar(&req.CreateTagIfNotExisting, "create-missing", false, "Create tags that do not exist yet")
	cmd.MarkFlagsOneRequired("profile-url", "linkedin-id")

	return cmd
}
