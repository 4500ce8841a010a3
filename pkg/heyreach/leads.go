package heyreach

import (
	"context"
	"net/http"
)

// GetLead fetches a lead by LinkedIn profile URL.
//
// API: POST /api/public/lead/GetLead
//
// Errors:
//   - 404 Not Found: If no lead has that profile URL.
func (c *Client) GetLead(ctx context.Context, apiKey string, profileURL string) (*Lead, error) {
	var resp leadDTO
	req := leadGetRequestDTO{ProfileURL: profileURL}
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/lead/GetLead", apiKey, req, &resp); err != nil {
		return nil, err
	}
	lead := fromLeadDTO(resp)
	return &lead, nil
}

// GetListsForLead pages through the lists a lead belongs to.
//
// API: POST /api/public/list/GetListsForLead
func (c *Client) GetListsForLead(ctx context.Context, apiKey string, req LeadListsRequest) (*Page[LeadListSummary], error) {
	dto := leadListsRequestDTO{
		Email:      req.Email,
		LinkedInID: req.LinkedInID,
		ProfileURL: req.ProfileURL,
		Offset:     req.Offset,
		Limit:      req.Limit,
	}
	var env pageEnvelope
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/list/GetListsForLead", apiKey, dto, &env); err != nil {
		return nil, err
	}
	return reconcilePage(ctx, env, fromLeadListSummaryDTO), nil
}

// GetLeadTags returns the tags assigned to a lead.
//
// API: POST /api/public/lead/GetTags
func (c *Client) GetLeadTags(ctx context.Context, apiKey string, profileURL string) (*LeadTags, error) {
	var resp leadTagsResponseDTO
	req := leadGetRequestDTO{ProfileURL: profileURL}
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/lead/GetTags", apiKey, req, &resp); err != nil {
		return nil, err
	}
	return &LeadTags{Tags: nonNil(resp.Tags)}, nil
}

// ReplaceLeadTags overwrites the tags of a lead and returns the tag set
// HeyReach ended up assigning. Tags the account does not know are dropped by
// HeyReach unless CreateTagIfNotExisting is set; the result is not
// re-checked here.
//
// API: POST /api/public/lead/ReplaceTags
//
// Idempotency: Idempotent
func (c *Client) ReplaceLeadTags(ctx context.Context, apiKey string, req ReplaceTagsRequest) (*ReplaceTagsResult, error) {
	dto := replaceTagsRequestDTO{
		LeadProfileURL:         req.LeadProfileURL,
		LeadLinkedInID:         req.LeadLinkedInID,
		Tags:                   nonNil(req.Tags),
		CreateTagIfNotExisting: req.CreateTagIfNotExisting,
	}
	var resp replaceTagsResponseDTO
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/lead/ReplaceTags", apiKey, dto, &resp); err != nil {
		return nil, err
	}
	return &ReplaceTagsResult{NewAssignedTags: nonNil(resp.NewAssignedTags)}, nil
}
