package inbox

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.miloapis.com/outreach-provider-heyreach/internal/cli"
	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

// CreateInboxCommand returns the inbox command group.
func CreateInboxCommand(opts *cli.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Read and answer LinkedIn conversations",
	}

	cmd.AddCommand(
		newConversationsCommand(opts),
		newSendCommand(opts),
	)

	return cmd
}

func newConversationsCommand(opts *cli.Options) *cobra.Command {
	var (
		page        cli.PageFlags
		filters     heyreach.ConversationFilters
		accountIDs  []uint
		campaignIDs []uint
		seen        bool
	)

	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "List inbox conversations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := cli.Uint32s("account id", accountIDs)
			if err != nil {
				return err
			}
			filters.LinkedInAccountIDs = ids
			filters.CampaignIDs = cli.Uint64s(campaignIDs)
			filters.Seen = cli.OptionalBool(cmd.Flags(), "seen", seen)

			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := client.GetConversations(cmd.Context(), apiKey, heyreach.ConversationsRequest{
				Filters: filters,
				Offset:  page.Offset,
				Limit:   page.Limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list conversations: %w", err)
			}
			return opts.Print(result)
		},
	}

	page.AddFlags(cmd.Flags(), false)
	cmd.Flags().UintSliceVar(&accountIDs, "account-id", nil, "Only conversations of these LinkedIn accounts")
	cmd.Flags().UintSliceVar(&campaignIDs, "campaign-id", nil, "Only conversations started by these campaigns")
	cmd.Flags().StringVar(&filters.SearchString, "search", "", "Free text search")
	cmd.Flags().StringVar(&filters.LeadLinkedInID, "lead-linkedin-id", "", "Only conversations with this lead")
	cmd.Flags().StringVar(&filters.LeadProfileURL, "lead-profile-url", "", "Only conversations with this lead")
	cmd.Flags().BoolVar(&seen, "seen", false, "Only seen (true) or unseen (false) conversations; both when unset")

	return cmd
}

func newSendCommand(opts *cli.Options) *cobra.Command {
	var (
		req       heyreach.SendMessageRequest
		accountID uint32
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message in an existing conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.LinkedInAccountID = accountID

			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			if err := client.SendMessage(cmd.Context(), apiKey, req); err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ConversationID, "conversation-id", "", "Conversation to reply in")
	cmd.Flags().Uint32Var(&accountID, "account-id", 0, "LinkedIn account that sends the message")
	cmd.Flags().StringVar(&req.Message, "message", "", "Message text")
	cmd.Flags().StringVar(&req.Subject, "subject", "", "Subject, for InMail conversations")
	for _, name := range []string{"conversation-id", "account-id", "message"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
