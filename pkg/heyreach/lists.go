package heyreach

import (
	"context"
	"fmt"
	"net/http"
)

// GetLists lists lead and company lists.
//
// API: POST /api/public/list/GetAll
func (c *Client) GetLists(ctx context.Context, apiKey string, filter ListFilter) (*Page[ListSummary], error) {
	req := listFilterDTO{Offset: filter.Offset, Limit: filter.Limit, Keyword: filter.Keyword}
	var env pageEnvelope
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/list/GetAll", apiKey, req, &env); err != nil {
		return nil, err
	}
	return reconcilePage(ctx, env, fromListSummaryDTO), nil
}

// GetList fetches one list.
//
// API: GET /api/public/list/GetById
//
// Errors:
//   - 404 Not Found: If the list does not exist.
func (c *Client) GetList(ctx context.Context, apiKey string, listID uint64) (*ListSummary, error) {
	var resp listSummaryDTO
	path := fmt.Sprintf("%s/list/GetById?listId=%d", apiPrefix, listID)
	if err := c.sendRequest(ctx, http.MethodGet, path, apiKey, nil, &resp); err != nil {
		return nil, err
	}
	list := fromListSummaryDTO(resp)
	return &list, nil
}

// GetListLeads pages through the leads of a list.
//
// API: POST /api/public/list/GetLeadsFromList
func (c *Client) GetListLeads(ctx context.Context, apiKey string, req ListLeadsRequest) (*Page[Lead], error) {
	dto := listLeadsRequestDTO{
		ListID:  req.ListID,
		Offset:  req.Offset,
		Limit:   req.Limit,
		Keyword: req.Keyword,
	}
	var env pageEnvelope
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/list/GetLeadsFromList", apiKey, dto, &env); err != nil {
		return nil, err
	}
	return reconcilePage(ctx, env, fromLeadDTO), nil
}

// AddLeadsToList adds leads to a list.
//
// API: POST /api/public/list/AddLeadsToList
//
// Idempotency: Not idempotent
func (c *Client) AddLeadsToList(ctx context.Context, apiKey string, listID uint64, leads []Lead) error {
	dto := listAddLeadsRequestDTO{ListID: listID, Leads: toLeadDTOs(leads)}
	return c.sendRequestEmpty(ctx, http.MethodPost, apiPrefix+"/list/AddLeadsToList", apiKey, dto)
}

// AddLeadsToListV2 adds leads to a list and reports added, updated and failed
// counts separately.
//
// API: POST /api/public/list/AddLeadsToListV2
//
// Idempotency: Not idempotent
func (c *Client) AddLeadsToListV2(ctx context.Context, apiKey string, listID uint64, leads []Lead) (*AddLeadsResult, error) {
	dto := listAddLeadsRequestDTO{ListID: listID, Leads: toLeadDTOs(leads)}
	var resp addLeadsResultDTO
	if err := c.sendRequest(ctx, http.MethodPost, apiPrefix+"/list/AddLeadsToListV2", apiKey, dto, &resp); err != nil {
		return nil, err
	}
	return fromAddLeadsResultDTO(resp), nil
}

// DeleteLeadsFromList removes list members by member id.
//
// API: DELETE /api/public/list/DeleteLeadsFromList
//
// Idempotency: Idempotent
func (c *Client) DeleteLeadsFromList(ctx context.Context, apiKey string, req ListLeadDeleteRequest) error {
	dto := listLeadDeleteRequestDTO{ListID: req.ListID, LeadMemberIDs: nonNil(req.LeadMemberIDs)}
	return c.sendRequestEmpty(ctx, http.MethodDelete, apiPrefix+"/list/DeleteLeadsFromList", apiKey, dto)
}

// DeleteLeadsFromListByProfileURL removes list members by profile URL. URLs
// that were not in the list come back in NotFoundInList.
//
// API: DELETE /api/public/list/DeleteLeadsFromListByProfileUrl
//
// Idempotency: Idempotent
func (c *Client) DeleteLeadsFromListByProfileURL(ctx context.Context, apiKey string, req ListLeadDeleteByProfileURLRequest) (*DeleteLeadsByProfileURLResult, error) {
	dto := listLeadDeleteByProfileURLRequestDTO{ListID: req.ListID, ProfileURLs: nonNil(req.ProfileURLs)}
	var resp listLeadDeleteByProfileURLResponseDTO
	err := c.sendRequest(ctx, http.MethodDelete, apiPrefix+"/list/DeleteLeadsFromListByProfileUrl", apiKey, dto, &resp)
	if err != nil {
		return nil, err
	}
	return &DeleteLeadsByProfileURLResult{NotFoundInList: nonNil(resp.NotFoundInList)}, nil
}
