package webhook

import (
	"context"

	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

// DefaultEndpoint is the path HeyReach deliveries are registered under.
const DefaultEndpoint = "/heyreach/events"

// NewHeyReachEventWebhookV1 returns a receiver that records every delivery in
// the log. Deliveries that do not name a lead are rejected.
func NewHeyReachEventWebhookV1(endpoint, secret string) *Webhook {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Webhook{
		Handler: HandlerFunc(func(ctx context.Context, req Request) Response {
			log := logf.FromContext(ctx).WithName("heyreach-webhook-handler")

			event := req.Event
			if event.Lead == nil || event.Lead.ProfileURL == "" {
				log.Info("Lead.ProfileURL is empty, cannot attribute event", "eventType", req.Type.String())
				return BadRequestResponse()
			}

			values := []any{
				"eventType", req.Type.String(),
				"leadProfileUrl", event.Lead.ProfileURL,
			}
			if event.Campaign != nil {
				values = append(values, "campaignId", event.Campaign.ID, "campaignName", event.Campaign.Name)
			}
			if event.Sender != nil {
				values = append(values, "senderId", event.Sender.ID)
			}

			switch req.Type {
			case heyreach.WebhookEventTypeMessageSent, heyreach.WebhookEventTypeMessageReplied:
				if event.ConversationID == "" {
					log.Info("ConversationID is empty for a message event", values...)
					return BadRequestResponse()
				}
				log.Info("Processing message event", append(values, "conversationId", event.ConversationID)...)
			default:
				log.Info("Processing connection event", values...)
			}

			return OkResponse()
		}),
		Endpoint: endpoint,
		secret:   secret,
	}
}
