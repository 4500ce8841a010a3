package heyreach

import (
	"context"
	"net/http"
)

const apiPrefix = "/api/public"

// CheckAPIKey verifies the key against HeyReach.
//
// API: GET /api/public/auth/CheckApiKey
//
// Errors:
//   - 401 Unauthorized: If the key is rejected.
func (c *Client) CheckAPIKey(ctx context.Context, apiKey string) error {
	return c.sendRequestEmpty(ctx, http.MethodGet, apiPrefix+"/auth/CheckApiKey", apiKey, nil)
}
