package heyreach

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus int

const (
	CampaignStatusUnknown CampaignStatus = iota
	CampaignStatusDraft
	CampaignStatusActive
	CampaignStatusPaused
	CampaignStatusFinished
	CampaignStatusCanceled
)

var campaignStatusParser = newEnumParser(CampaignStatusUnknown, map[CampaignStatus][]string{
	CampaignStatusDraft:    {"draft"},
	CampaignStatusActive:   {"active"},
	CampaignStatusPaused:   {"paused"},
	CampaignStatusFinished: {"finished"},
	CampaignStatusCanceled: {"canceled"},
})

// ParseCampaignStatus never fails; unrecognised values map to CampaignStatusUnknown.
func ParseCampaignStatus(s string) CampaignStatus {
	return campaignStatusParser.parse(s)
}

// String returns the lowercase token the API expects.
func (s CampaignStatus) String() string {
	switch s {
	case CampaignStatusDraft:
		return "draft"
	case CampaignStatusActive:
		return "active"
	case CampaignStatusPaused:
		return "paused"
	case CampaignStatusFinished:
		return "finished"
	case CampaignStatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

func (s CampaignStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *CampaignStatus) UnmarshalText(text []byte) error {
	*s = ParseCampaignStatus(string(text))
	return nil
}

// ListType tells whether a list holds people or companies.
type ListType int

const (
	ListTypeUnknown ListType = iota
	ListTypeLeads
	ListTypeCompanies
)

var listTypeParser = newEnumParser(ListTypeUnknown, map[ListType][]string{
	ListTypeLeads:     {"leads"},
	ListTypeCompanies: {"companies"},
})

// ParseListType never fails; unrecognised values map to ListTypeUnknown.
func ParseListType(s string) ListType {
	return listTypeParser.parse(s)
}

func (t ListType) String() string {
	switch t {
	case ListTypeLeads:
		return "leads"
	case ListTypeCompanies:
		return "companies"
	default:
		return "unknown"
	}
}

func (t ListType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ListType) UnmarshalText(text []byte) error {
	*t = ParseListType(string(text))
	return nil
}

// WebhookEventType is the event a webhook subscribes to.
type WebhookEventType int

const (
	WebhookEventTypeUnknown WebhookEventType = iota
	WebhookEventTypeConnectionRequestSent
	WebhookEventTypeConnectionAccepted
	WebhookEventTypeMessageSent
	WebhookEventTypeMessageReplied
)

var webhookEventTypeParser = newEnumParser(WebhookEventTypeUnknown, map[WebhookEventType][]string{
	WebhookEventTypeConnectionRequestSent: {"connectionrequestsent", "connection_request_sent", "connection-request-sent"},
	WebhookEventTypeConnectionAccepted:    {"connectionaccepted", "connection_accepted", "connection-accepted"},
	WebhookEventTypeMessageSent:           {"messagesent", "message_sent", "message-sent"},
	WebhookEventTypeMessageReplied:        {"messagereplied", "message_replied", "message-replied"},
})

// ParseWebhookEventType accepts the camel, snake and kebab spellings of an
// event in any casing. Unrecognised values map to WebhookEventTypeUnknown.
func ParseWebhookEventType(s string) WebhookEventType {
	return webhookEventTypeParser.parse(s)
}

// String returns the capitalized token the API expects, e.g. "MessageSent".
func (t WebhookEventType) String() string {
	switch t {
	case WebhookEventTypeConnectionRequestSent:
		return "ConnectionRequestSent"
	case WebhookEventTypeConnectionAccepted:
		return "ConnectionAccepted"
	case WebhookEventTypeMessageSent:
		return "MessageSent"
	case WebhookEventTypeMessageReplied:
		return "MessageReplied"
	default:
		return "Unknown"
	}
}

func (t WebhookEventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *WebhookEventType) UnmarshalText(text []byte) error {
	*t = ParseWebhookEventType(string(text))
	return nil
}

// Page is a window of a remote collection. TotalCount is whatever the API
// reported and may disagree with len(Items).
type Page[T any] struct {
	TotalCount uint32 `json:"total_count"`
	Items      []T    `json:"items"`
}

// ProgressStats counts campaign participants per state. TotalUsersInProgress
// is signed because the API has been observed reporting negative values.
type ProgressStats struct {
	TotalUsers                uint32 `json:"total_users"`
	TotalUsersInProgress      int32  `json:"total_users_in_progress"`
	TotalUsersPending         uint32 `json:"total_users_pending"`
	TotalUsersFinished        uint32 `json:"total_users_finished"`
	TotalUsersFailed          uint32 `json:"total_users_failed"`
	TotalUsersManuallyStopped uint32 `json:"total_users_manually_stopped"`
	TotalUsersExcluded        uint32 `json:"total_users_excluded"`
}

// CampaignSummary describes a campaign.
type CampaignSummary struct {
	ID                   uint64         `json:"id"`
	Name                 string         `json:"name"`
	CreationTime         string         `json:"creation_time"`
	LinkedInUserListName *string        `json:"linkedin_user_list_name,omitempty"`
	LinkedInUserListID   *uint64        `json:"linkedin_user_list_id,omitempty"`
	CampaignAccountIDs   []uint32       `json:"campaign_account_ids"`
	Status               CampaignStatus `json:"status"`
	ProgressStats        *ProgressStats `json:"progress_stats,omitempty"`

	ExcludeInOtherCampaigns                   bool    `json:"exclude_in_other_campaigns"`
	ExcludeHasOtherAccConversations           bool    `json:"exclude_has_other_acc_conversations"`
	ExcludeContactedFromSenderInOtherCampaign bool    `json:"exclude_contacted_from_sender_in_other_campaign"`
	ExcludeListID                             *uint64 `json:"exclude_list_id,omitempty"`
	OrganizationUnitID                        *uint64 `json:"organization_unit_id,omitempty"`

	// Older API versions reported these flags; nil means the field was absent.
	ExcludeAlreadyMessagedGlobal           *bool `json:"exclude_already_messaged_global,omitempty"`
	ExcludeAlreadyMessagedCampaignAccounts *bool `json:"exclude_already_messaged_campaign_accounts,omitempty"`
	ExcludeFirstConnectionCampaignAccounts *bool `json:"exclude_first_connection_campaign_accounts,omitempty"`
	ExcludeFirstConnectionGlobal           *bool `json:"exclude_first_connection_global,omitempty"`
	ExcludeNoProfilePicture                *bool `json:"exclude_no_profile_picture,omitempty"`
}

// CampaignFilter selects campaigns. Statuses and AccountIDs are sets; order
// and duplicates are irrelevant.
type CampaignFilter struct {
	Offset     uint32           `json:"offset"`
	Limit      uint32           `json:"limit"`
	Keyword    string           `json:"keyword,omitempty"`
	Statuses   []CampaignStatus `json:"statuses,omitempty"`
	AccountIDs []uint32         `json:"account_ids,omitempty"`
}

// CustomUserField is a free-form attribute attached to a lead.
type CustomUserField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Lead is a LinkedIn profile. Empty optional strings are omitted on the wire.
type Lead struct {
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	ProfileURL       string            `json:"profile_url"`
	Location         string            `json:"location,omitempty"`
	Summary          string            `json:"summary,omitempty"`
	CompanyName      string            `json:"company_name,omitempty"`
	Position         string            `json:"position,omitempty"`
	About            string            `json:"about,omitempty"`
	EmailAddress     string            `json:"email_address,omitempty"`
	CustomUserFields []CustomUserField `json:"custom_user_fields,omitempty"`
}

// AccountLeadPair assigns a lead to a sender account. A nil account lets
// HeyReach pick one.
type AccountLeadPair struct {
	LinkedInAccountID *uint32 `json:"linkedin_account_id,omitempty"`
	Lead              Lead    `json:"lead"`
}

type CampaignAddLeadsRequest struct {
	CampaignID       uint64            `json:"campaign_id"`
	AccountLeadPairs []AccountLeadPair `json:"account_lead_pairs"`
}

// AddLeadsResult is the per-outcome breakdown returned by the V2 add-leads
// endpoints.
type AddLeadsResult struct {
	AddedLeadsCount   uint32 `json:"added_leads_count"`
	UpdatedLeadsCount uint32 `json:"updated_leads_count"`
	FailedLeadsCount  uint32 `json:"failed_leads_count"`
}

type ListFilter struct {
	Offset  uint32 `json:"offset"`
	Limit   uint32 `json:"limit"`
	Keyword string `json:"keyword,omitempty"`
}

type ListSummary struct {
	ID              uint64   `json:"id"`
	Name            string   `json:"name"`
	TotalItemsCount uint32   `json:"total_items_count"`
	ListType        ListType `json:"list_type"`
	CreationTime    string   `json:"creation_time"`
	CampaignIDs     []uint64 `json:"campaign_ids"`
}

type ListLeadsRequest struct {
	ListID  uint64 `json:"list_id"`
	Offset  uint32 `json:"offset"`
	Limit   uint32 `json:"limit"`
	Keyword string `json:"keyword,omitempty"`
}

type ListLeadDeleteRequest struct {
	ListID        uint64   `json:"list_id"`
	LeadMemberIDs []string `json:"lead_member_ids"`
}

type ListLeadDeleteByProfileURLRequest struct {
	ListID      uint64   `json:"list_id"`
	ProfileURLs []string `json:"profile_urls"`
}

// DeleteLeadsByProfileURLResult lists the submitted URLs that were not members
// of the list. It is informational; a non-empty slice is not a failure.
type DeleteLeadsByProfileURLResult struct {
	NotFoundInList []string `json:"not_found_in_list"`
}

// LeadListsRequest identifies a lead by any one of email, LinkedIn id or
// profile URL.
type LeadListsRequest struct {
	Email      string `json:"email,omitempty"`
	LinkedInID string `json:"linkedin_id,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
	Offset     uint32 `json:"offset"`
	Limit      uint32 `json:"limit"`
}

type LeadListSummary struct {
	ListID   uint64 `json:"list_id"`
	ListName string `json:"list_name"`
}

type LeadTags struct {
	Tags []string `json:"tags"`
}

// ReplaceTagsRequest overwrites every tag on a lead. Tags unknown to the
// account are only created when CreateTagIfNotExisting is set.
type ReplaceTagsRequest struct {
	LeadProfileURL         string   `json:"lead_profile_url,omitempty"`
	LeadLinkedInID         string   `json:"lead_linkedin_id,omitempty"`
	Tags                   []string `json:"tags"`
	CreateTagIfNotExisting bool     `json:"create_tag_if_not_existing"`
}

// ReplaceTagsResult is the complete tag set after replacement.
type ReplaceTagsResult struct {
	NewAssignedTags []string `json:"new_assigned_tags"`
}

// ConversationFilters narrows an inbox query. Every field is optional.
type ConversationFilters struct {
	LinkedInAccountIDs []uint32 `json:"linkedin_account_ids,omitempty"`
	CampaignIDs        []uint64 `json:"campaign_ids,omitempty"`
	SearchString       string   `json:"search_string,omitempty"`
	LeadLinkedInID     string   `json:"lead_linkedin_id,omitempty"`
	LeadProfileURL     string   `json:"lead_profile_url,omitempty"`
	Seen               *bool    `json:"seen,omitempty"`
}

type ConversationsRequest struct {
	Filters ConversationFilters `json:"filters"`
	Offset  uint32              `json:"offset"`
	Limit   uint32              `json:"limit"`
}

type ConversationSummary struct {
	ConversationID     string  `json:"conversation_id"`
	LinkedInAccountID  uint32  `json:"linkedin_account_id"`
	LeadProfileURL     *string `json:"lead_profile_url,omitempty"`
	LastMessageSnippet *string `json:"last_message_snippet,omitempty"`
	Seen               bool    `json:"seen"`
}

type SendMessageRequest struct {
	Message           string `json:"message"`
	Subject           string `json:"subject,omitempty"`
	ConversationID    string `json:"conversation_id"`
	LinkedInAccountID uint32 `json:"linkedin_account_id"`
}

type LinkedInAccountFilter struct {
	Offset  uint32 `json:"offset"`
	Limit   uint32 `json:"limit"`
	Keyword string `json:"keyword,omitempty"`
}

// LinkedInAccount is a sender account. The three validity flags are
// independent: an account may hold a valid login but an expired seat.
type LinkedInAccount struct {
	ID               uint32 `json:"id"`
	EmailAddress     string `json:"email_address"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	IsActive         bool   `json:"is_active"`
	ActiveCampaigns  uint32 `json:"active_campaigns"`
	AuthIsValid      bool   `json:"auth_is_valid"`
	IsValidRecruiter bool   `json:"is_valid_recruiter"`
	IsValidNavigator bool   `json:"is_valid_navigator"`
}

type Webhook struct {
	ID          uint64           `json:"id"`
	WebhookName string           `json:"webhook_name"`
	WebhookURL  string           `json:"webhook_url"`
	EventType   WebhookEventType `json:"event_type"`
	CampaignIDs []uint64         `json:"campaign_ids"`
	IsActive    bool             `json:"is_active"`
}

type CreateWebhookRequest struct {
	WebhookName string           `json:"webhook_name"`
	WebhookURL  string           `json:"webhook_url"`
	EventType   WebhookEventType `json:"event_type"`
	CampaignIDs []uint64         `json:"campaign_ids,omitempty"`
	IsActive    bool             `json:"is_active"`
}

type WebhookFilter struct {
	Offset uint32 `json:"offset"`
	Limit  uint32 `json:"limit"`
}
