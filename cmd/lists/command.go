package lists

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.miloapis.com/outreach-provider-heyreach/internal/cli"
	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

// CreateListsCommand returns the lists command group.
func CreateListsCommand(opts *cli.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage HeyReach lead and company lists",
	}

	cmd.AddCommand(
		newListCommand(opts),
		newGetCommand(opts),
		newLeadsCommand(opts),
		newAddLeadsCommand(opts, false),
		newAddLeadsCommand(opts, true),
		newDeleteLeadsCommand(opts),
		newDeleteLeadsByURLCommand(opts),
	)

	return cmd
}

func newListCommand(opts *cli.Options) *cobra.Command {
	var page cli.PageFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := client.GetLists(cmd.Context(), apiKey, heyreach.ListFilter{
				Offset:  page.Offset,
				Limit:   page.Limit,
				Keyword: page.Keyword,
			})
			if err != nil {
				return fmt.Errorf("failed to list lists: %w", err)
			}
			return opts.Print(result)
		},
	}

	page.AddFlags(cmd.Flags(), true)
	return cmd
}

func newGetCommand(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get LIST_ID",
		Short: "Get a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := cli.ParseID("list id", args[0])
			if err != nil {
				return err
			}
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			list, err := client.GetList(cmd.Context(), apiKey, listID)
			if err != nil {
				return fmt.Errorf("failed to get list %d: %w", listID, err)
			}
			return opts.Print(list)
		},
	}
}

func newLeadsCommand(opts *cli.Options) *cobra.Command {
	var page cli.PageFlags

	cmd := &cobra.Command{
		Use:   "leads LIST_ID",
		Short: "List the leads of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := cli.ParseID("list id", args[0])
			if err != nil {
				return err
			}
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := client.GetListLeads(cmd.Context(), apiKey, heyreach.ListLeadsRequest{
				ListID:  listID,
				Offset:  page.Offset,
				Limit:   page.Limit,
				Keyword: page.Keyword,
			})
			if err != nil {
				return fmt.Errorf("failed to list leads of list %d: %w", listID, err)
			}
			return opts.Print(result)
		},
	}

	page.AddFlags(cmd.Flags(), true)
	return cmd
}

func newAddLeadsCommand(opts *cli.Options, v2 bool) *cobra.Command {
	var file string

	use, short := "add-leads", "Add leads to a list"
	if v2 {
		use, short = "add-leads-v2", "Add leads to a list and print added, updated and failed counts"
	}

	cmd := &cobra.Command{
		Use:   use + " LIST_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := cli.ParseID("list id", args[0])
			if err != nil {
				return err
			}
			leads, err := cli.ReadList[heyreach.Lead](file, opts.In)
			if err != nil {
				return err
			}
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}

			if !v2 {
				if err := client.AddLeadsToList(cmd.Context(), apiKey, listID, leads); err != nil {
					return fmt.Errorf("failed to add leads to list %d: %w", listID, err)
				}
				return nil
			}

			result, err := client.AddLeadsToListV2(cmd.Context(), apiKey, listID, leads)
			if err != nil {
				return fmt.Errorf("failed to add leads to list %d: %w", listID, err)
			}
			return opts.Print(result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON or YAML file with a list of leads, - for stdin")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newDeleteLeadsCommand(opts *cli.Options) *cobra.Command {
	var memberIDs []string

	cmd := &cobra.Command{
		Use:   "delete-leads LIST_ID",
		Short: "Remove leads from a list by member id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := cli.ParseID("list id", args[0])
			if err != nil {
				return err
			}
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			err = client.DeleteLeadsFromList(cmd.Context(), apiKey, heyreach.ListLeadDeleteRequest{
				ListID:        listID,
				LeadMemberIDs: memberIDs,
			})
			if err != nil {
				return fmt.Errorf("failed to delete leads from list %d: %w", listID, err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&memberIDs, "member-id", nil, "Lead member id to remove (repeatable)")
	_ = cmd.MarkFlagRequired("member-id")

	return cmd
}

func newDeleteLeadsByURLCommand(opts *cli.Options) *cobra.Command {
	var profileURLs []string

	cmd := &cobra.Command{
		Use:   "delete-leads-by-url LIST_ID",
		Short: "Remove leads from a list by LinkedIn profile URL",
		Long: "Remove leads from a list by LinkedIn profile URL.\n\n" +
			"URLs that were not in the list are printed; they do not make the command fail.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := cli.ParseID("list id", args[0])
			if err != nil {
				return err
			}
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := client.DeleteLeadsFromListByProfileURL(cmd.Context(), apiKey, heyreach.ListLeadDeleteByProfileURLRequest{
				ListID:      listID,
				ProfileURLs: profileURLs,
			})
			if err != nil {
				return fmt.Errorf("failed to delete leads from list %d: %w", listID, err)
			}
			return opts.Print(result)
		},
	}

	// StringArray keeps URLs that contain commas intact.
	cmd.Flags().StringArrayVar(&profileURLs, "profile-url", nil, "LinkedIn profile URL to remove (repeatable)")
	_ = cmd.MarkFlagRequired("profile-url")

	return cmd
}
