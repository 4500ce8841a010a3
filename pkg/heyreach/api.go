package heyreach

import "context"

// API defines the interface for the HeyReach SDK. Every method takes the API
// key to authenticate with; nothing is cached between calls.
type API interface {
	// CheckAPIKey returns nil when HeyReach accepts the key.
	CheckAPIKey(ctx context.Context, apiKey string) error

	GetCampaigns(ctx context.Context, apiKey string, filter CampaignFilter) (*Page[CampaignSummary], error)
	GetCampaign(ctx context.Context, apiKey string, campaignID uint64) (*CampaignSummary, error)
	ResumeCampaign(ctx context.Context, apiKey string, campaignID uint64) error
	PauseCampaign(ctx context.Context, apiKey string, campaignID uint64) error
	// AddLeadsToCampaign returns the number of leads HeyReach accepted.
	AddLeadsToCampaign(ctx context.Context, apiKey string, req CampaignAddLeadsRequest) (uint32, error)
	AddLeadsToCampaignV2(ctx context.Context, apiKey string, req CampaignAddLeadsRequest) (*AddLeadsResult, error)

	GetLists(ctx context.Context, apiKey string, filter ListFilter) (*Page[ListSummary], error)
	GetList(ctx context.Context, apiKey string, listID uint64) (*ListSummary, error)
	GetListLeads(ctx context.Context, apiKey string, req ListLeadsRequest) (*Page[Lead], error)
	AddLeadsToList(ctx context.Context, apiKey string, listID uint64, leads []Lead) error
	AddLeadsToListV2(ctx context.Context, apiKey string, listID uint64, leads []Lead) (*AddLeadsResult, error)
	DeleteLeadsFromList(ctx context.Context, apiKey string, req ListLeadDeleteRequest) error
	DeleteLeadsFromListByProfileURL(ctx context.Context, apiKey string, req ListLeadDeleteByProfileURLRequest) (*DeleteLeadsByProfileURLResult, error)

	GetLead(ctx context.Context, apiKey string, profileURL string) (*Lead, error)
	GetListsForLead(ctx context.Context, apiKey string, req LeadListsRequest) (*Page[LeadListSummary], error)
	GetLeadTags(ctx context.Context, apiKey string, profileURL string) (*LeadTags, error)
	ReplaceLeadTags(ctx context.Context, apiKey string, req ReplaceTagsRequest) (*ReplaceTagsResult, error)

	GetConversations(ctx context.Context, apiKey string, req ConversationsRequest) (*Page[ConversationSummary], error)
	SendMessage(ctx context.Context, apiKey string, req SendMessageRequest) error

	GetLinkedInAccounts(ctx context.Context, apiKey string, filter LinkedInAccountFilter) (*Page[LinkedInAccount], error)

	CreateWebhook(ctx context.Context, apiKey string, req CreateWebhookRequest) (*Webhook, error)
	GetWebhook(ctx context.Context, apiKey string, webhookID uint64) (*Webhook, error)
	GetWebhooks(ctx context.Context, apiKey string, filter WebhookFilter) (*Page[Webhook], error)
	DeleteWebhook(ctx context.Context, apiKey string, webhookID uint64) error
}

var _ API = (*Client)(nil)
