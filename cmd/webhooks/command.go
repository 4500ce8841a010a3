package webhooks

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.miloapis.com/outreach-provider-heyreach/internal/cli"
	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

// CreateWebhooksCommand returns the webhooks command group. It manages the
// webhooks registered in HeyReach; see webhook-server for receiving them.
func CreateWebhooksCommand(opts *cli.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage HeyReach webhook registrations",
	}

	cmd.AddCommand(
		newCreateCommand(opts),
		newGetCommand(opts),
		newListCommand(opts),
		newDeleteCommand(opts),
	)

	return cmd
}

func newCreateCommand(opts *cli.Options) *cobra.Command {
	var (
		req         heyreach.CreateWebhookRequest
		eventType   string
		campaignIDs []uint
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a webhook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.EventType = heyreach.ParseWebhookEventType(eventType)
			if req.EventType == heyreach.WebhookEventTypeUnknown {
				return fmt.Errorf("unknown event type %q", eventType)
			}
			req.CampaignIDs = cli.Uint64s(campaignIDs)

			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			webhook, err := client.CreateWebhook(cmd.Context(), apiKey, req)
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}
			return opts.Print(webhook)
		},
	}

	cmd.Flags().StringVar(&req.WebhookName, "name", "", "Webhook name")
	cmd.Flags().StringVar(&req.WebhookURL, "url", "", "URL HeyReach delivers events to")
	cmd.Flags().StringVar(&eventType, "event-type", "",
		"Event to subscribe to (ConnectionRequestSent, ConnectionAccepted, MessageSent, MessageReplied)")
	cmd.Flags().UintSliceVar(&campaignIDs, "campaign-id", nil, "Only deliver events of these campaigns")
	cmd.Flags().BoolVar(&req.IsActive, "active", true, "Create the webhook enabled")
	for _, name := range []string{"name", "url", "event-type"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newGetCommand(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get WEBHOOK_ID",
		Short: "Get a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			webhookID, err := cli.ParseID("webhook id", args[0])
			if err != nil {
				return err
			}
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			webhook, err := client.GetWebhook(cmd.Context(), apiKey, webhookID)
			if err != nil {
				return fmt.Errorf("failed to get webhook %d: %w", webhookID, err)
			}
			return opts.Print(webhook)
		},
	}
}

func newListCommand(opts *cli.Options) *cobra.Command {
	var page cli.PageFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := client.GetWebhooks(cmd.Context(), apiKey, heyreach.WebhookFilter{
				Offset: page.Offset,
				Limit:  page.Limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}
			return opts.Print(result)
		},
	}

	page.AddFlags(cmd.Flags(), false)
	return cmd
}

func newDeleteCommand(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete WEBHOOK_ID",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			webhookID, err := cli.ParseID("webhook id", args[0])
			if err != nil {
				return err
			}
			client, apiKey, err := opts.Client()
			if err != nil {
				return err
			}
			if err := client.DeleteWebhook(cmd.Context(), apiKey, webhookID); err != nil {
				return fmt.Errorf("failed to delete webhook %d: %w", webhookID, err)
			}
			return nil
		},
	}
}
