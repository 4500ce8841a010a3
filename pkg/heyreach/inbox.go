package heyreach

import (
	"context"
	"net/http"
)

// GetConversations pages through inbox conversations.
//
// API: POST /api/public/inbox/GetConversationsV2
func (c *Client) GetConversations(ctx context.Context, apiKey string, req ConversationsRequest) (*Page[ConversationSummary], error) {
	dto := conversationsRequestDTO{
		Filters: inboxFiltersDTO{
			LinkedInAccountIDs: idSet(req.Filters.LinkedInAccountIDs),
			CampaignIDs:        idSet(req.Filters.CampaignIDs),
			SearchString:       req.Filters.SearchString,
			LeadLinkedInID:     req.Filters.LeadLinkedInID,
			LeadProfileURL:     req.Filters.LeadProfileURL,
			Seen:               req.Filters.Seen,
		},
		Offset: req.Offset,
		Limit:  req.Limit,
	}
	var env pageEnvelope
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/inbox/GetConversationsV2", apiKey, dto, &env); err != nil {
		return nil, err
	}
	return reconcilePage(ctx, env, fromConversationSummaryDTO), nil
}

// SendMessage replies in an existing conversation from the given sender account.
//
// API: POST /api/public/inbox/SendMessage
//
// Idempotency: Not idempotent
func (c *Client) SendMessage(ctx context.Context, apiKey string, req SendMessageRequest) error {
	dto := sendMessageRequestDTO{
		Message:           req.Message,
		Subject:           req.Subject,
		ConversationID:    req.ConversationID,
		LinkedInAccountID: req.LinkedInAccountID,
	}
	return c.sendRequestEmpty(ctx, http.MethodPost, apiPrefix+"/inbox/SendMessage", apiKey, dto)
}
