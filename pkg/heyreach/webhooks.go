package heyreach

import (
	"context"
	"fmt"
	"net/http"
)

// CreateWebhook registers a webhook.
//
// API: POST /api/public/webhooks/CreateWebhook
//
// Idempotency: Not idempotent
func (c *Client) CreateWebhook(ctx context.Context, apiKey string, req CreateWebhookRequest) (*Webhook, error) {
	dto := createWebhookRequestDTO{
		WebhookName: req.WebhookName,
		WebhookURL:  req.WebhookURL,
		EventType:   req.EventType.String(),
		CampaignIDs: idSet(req.CampaignIDs),
		IsActive:    req.IsActive,
	}
	var resp webhookDTO
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/webhooks/CreateWebhook", apiKey, dto, &resp); err != nil {
		return nil, err
	}
	webhook := fromWebhookDTO(resp)
	return &webhook, nil
}

// GetWebhook fetches one webhook.
//
// API: GET /api/public/webhooks/GetWebhookById
//
// Errors:
//   - 404 Not Found: If the webhook does not exist.
func (c *Client) GetWebhook(ctx context.Context, apiKey string, webhookID uint64) (*Webhook, error) {
	var resp webhookDTO
	path := fmt.Sprintf("%s/webhooks/GetWebhookById?webhookId=%d", apiPrefix, webhookID)
	if err := c.sendRequest(ctx, http.MethodGet, path, apiKey, nil, &resp); err != nil {
		return nil, err
	}
	webhook := fromWebhookDTO(resp)
	return &webhook, nil
}

// GetWebhooks lists webhooks.
//
// API: POST /api/public/webhooks/GetAllWebhooks
func (c *Client) GetWebhooks(ctx context.Context, apiKey string, filter WebhookFilter) (*Page[Webhook], error) {
	req := webhookFilterDTO{Offset: filter.Offset, Limit: filter.Limit}
	var env pageEnvelope
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/webhooks/GetAllWebhooks", apiKey, req, &env); err != nil {
		return nil, err
	}
	return reconcilePage(ctx, env, fromWebhookDTO), nil
}

// DeleteWebhook removes a webhook.
//
// API: DELETE /api/public/webhooks/DeleteWebhook
//
// Idempotency: Idempotent
func (c *Client) DeleteWebhook(ctx context.Context, apiKey string, webhookID uint64) error {
	path := fmt.Sprintf("%s/webhooks/DeleteWebhook?webhookId=%d", apiPrefix, webhookID)
	return c.sendRequestEmpty(ctx, http.MethodDelete, path, apiKey, nil)
}
