package heyreach

import (
	"context"
	"net/http"
)

// GetLinkedInAccounts lists the LinkedIn sender accounts of the workspace.
//
// API: POST /api/public/li_account/GetAll
func (c *Client) GetLinkedInAccounts(ctx context.Context, apiKey string, filter LinkedInAccountFilter) (*Page[LinkedInAccount], error) {
	req := linkedInAccountFilterDTO{Offset: filter.Offset, Limit: filter.Limit, Keyword: filter.Keyword}
	var env pageEnvelope
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/li_account/GetAll", apiKey, req, &env); err != nil {
		return nil, err
	}
	return reconcilePage(ctx, env, fromLinkedInAccountDTO), nil
}
