package heyreach

import (
	"context"
	"fmt"
	"net/http"
)

// GetCampaigns lists campaigns matching the filter.
//
// API: POST /api/public/campaign/GetAll
func (c *Client) GetCampaigns(ctx context.Context, apiKey string, filter CampaignFilter) (*Page[CampaignSummary], error) {
	var env pageEnvelope
	err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/campaign/GetAll", apiKey, toCampaignFilterDTO(filter), &env)
	if err != nil {
		return nil, err
	}
	return reconcilePage(ctx, env, fromCampaignSummaryDTO), nil
}

// GetCampaign fetches one campaign.
//
// API: GET /api/public/campaign/GetById
//
// Errors:
//   - 404 Not Found: If the campaign does not exist.
func (c *Client) GetCampaign(ctx context.Context, apiKey string, campaignID uint64) (*CampaignSummary, error) {
	var resp campaignSummaryDTO
	path := fmt.Sprintf("%s/campaign/GetById?campaignId=%d", apiPrefix, campaignID)
	if err := c.sendRequest(ctx, http.MethodGet, path, apiKey, nil, &resp); err != nil {
		return nil, err
	}
	campaign := fromCampaignSummaryDTO(resp)
	return &campaign, nil
}

// ResumeCampaign resumes a paused campaign.
//
// API: POST /api/public/campaign/Resume
func (c *Client) ResumeCampaign(ctx context.Context, apiKey string, campaignID uint64) error {
	path := fmt.Sprintf("%s/campaign/Resume?campaignId=%d", apiPrefix, campaignID)
	return c.sendRequestEmpty(ctx, http.MethodPost, path, apiKey, nil)
}

// PauseCampaign pauses a running campaign.
//
// API: POST /api/public/campaign/Pause
func (c *Client) PauseCampaign(ctx context.Context, apiKey string, campaignID uint64) error {
	path := fmt.Sprintf("%s/campaign/Pause?campaignId=%d", apiPrefix, campaignID)
	return c.sendRequestEmpty(ctx, http.MethodPost, path, apiKey, nil)
}

// AddLeadsToCampaign adds leads to a campaign and returns how many were added.
//
// API: POST /api/public/campaign/AddLeadsToCampaign
//
// Idempotency: Not idempotent
func (c *Client) AddLeadsToCampaign(ctx context.Context, apiKey string, req CampaignAddLeadsRequest) (uint32, error) {
	var added uint32
	err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/campaign/AddLeadsToCampaign", apiKey, toCampaignAddLeadsRequestDTO(req), &added)
	if err != nil {
		return 0, err
	}
	return added, nil
}

// AddLeadsToCampaignV2 adds leads to a campaign and reports added, updated and
// failed counts separately.
//
// API: POST /api/public/campaign/AddLeadsToCampaignV2
//
// Idempotency: Not idempotent
func (c *Client) AddLeadsToCampaignV2(ctx context.Context, apiKey string, req CampaignAddLeadsRequest) (*AddLeadsResult, error) {
	var resp addLeadsResultDTO
	err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/campaign/AddLeadsToCampaignV2", apiKey, toCampaignAddLeadsRequestDTO(req), &resp)
	if err != nil {
		return nil, err
	}
	return fromAddLeadsResultDTO(resp), nil
}
