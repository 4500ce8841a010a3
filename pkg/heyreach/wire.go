package heyreach

// Shapes below mirror the HeyReach JSON exactly and never leave this package.

type campaignFilterDTO struct {
	Offset     uint32   `json:"offset"`
	Limit      uint32   `json:"limit"`
	Keyword    string   `json:"keyword,omitempty"`
	Statuses   []string `json:"statuses"`
	AccountIDs []uint32 `json:"accountIds"`
}

type progressStatsDTO struct {
	TotalUsers                uint32 `json:"totalUsers"`
	TotalUsersInProgress      int32  `json:"totalUsersInProgress"`
	TotalUsersPending         uint32 `json:"totalUsersPending"`
	TotalUsersFinished        uint32 `json:"totalUsersFinished"`
	TotalUsersFailed          uint32 `json:"totalUsersFailed"`
	TotalUsersManuallyStopped uint32 `json:"totalUsersManuallyStopped"`
	TotalUsersExcluded        uint32 `json:"totalUsersExcluded"`
}

type campaignSummaryDTO struct {
	ID                   uint64            `json:"id"`
	Name                 string            `json:"name"`
	CreationTime         string            `json:"creationTime"`
	LinkedInUserListName *string           `json:"linkedInUserListName"`
	LinkedInUserListID   *uint64           `json:"linkedInUserListId"`
	CampaignAccountIDs   []uint32          `json:"campaignAccountIds"`
	Status               string            `json:"status"`
	ProgressStats        *progressStatsDTO `json:"progressStats"`

	ExcludeInOtherCampaigns                   bool    `json:"excludeInOtherCampaigns"`
	ExcludeHasOtherAccConversations           bool    `json:"excludeHasOtherAccConversations"`
	ExcludeContactedFromSenderInOtherCampaign bool    `json:"excludeContactedFromSenderInOtherCampaign"`
	ExcludeListID                             *uint64 `json:"excludeListId"`
	OrganizationUnitID                        *uint64 `json:"organizationUnitId"`

	ExcludeAlreadyMessagedGlobal           *bool `json:"excludeAlreadyMessagedGlobal"`
	ExcludeAlreadyMessagedCampaignAccounts *bool `json:"excludeAlreadyMessagedCampaignAccounts"`
	ExcludeFirstConnectionCampaignAccounts *bool `json:"excludeFirstConnectionCampaignAccounts"`
	ExcludeFirstConnectionGlobal           *bool `json:"excludeFirstConnectionGlobal"`
	ExcludeNoProfilePicture                *bool `json:"excludeNoProfilePicture"`
}

type customUserFieldDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type leadDTO struct {
	FirstName        string               `json:"firstName"`
	LastName         string               `json:"lastName"`
	ProfileURL       string               `json:"profileUrl"`
	Location         string               `json:"location,omitempty"`
	Summary          string               `json:"summary,omitempty"`
	CompanyName      string               `json:"companyName,omitempty"`
	Position         string               `json:"position,omitempty"`
	About            string               `json:"about,omitempty"`
	EmailAddress     string               `json:"emailAddress,omitempty"`
	CustomUserFields []customUserFieldDTO `json:"customUserFields"`
}

type accountLeadPairDTO struct {
	LinkedInAccountID *uint32 `json:"linkedInAccountId,omitempty"`
	Lead              leadDTO `json:"lead"`
}

type campaignAddLeadsRequestDTO struct {
	CampaignID       uint64               `json:"campaignId"`
	AccountLeadPairs []accountLeadPairDTO `json:"accountLeadPairs"`
}

type addLeadsResultDTO struct {
	AddedLeadsCount   uint32 `json:"addedLeadsCount"`
	UpdatedLeadsCount uint32 `json:"updatedLeadsCount"`
	FailedLeadsCount  uint32 `json:"failedLeadsCount"`
}

type listFilterDTO struct {
	Offset  uint32 `json:"offset"`
	Limit   uint32 `json:"limit"`
	Keyword string `json:"keyword,omitempty"`
}

type listSummaryDTO struct {
	ID              uint64   `json:"id"`
	Name            string   `json:"name"`
	TotalItemsCount uint32   `json:"totalItemsCount"`
	ListType        string   `json:"listType"`
	CreationTime    string   `json:"creationTime"`
	CampaignIDs     []uint64 `json:"campaignIds"`
}

type listLeadsRequestDTO struct {
	ListID  uint64 `json:"listId"`
	Offset  uint32 `json:"offset"`
	Limit   uint32 `json:"limit"`
	Keyword string `json:"keyword,omitempty"`
}

type listAddLeadsRequestDTO struct {
	ListID uint64    `json:"listId"`
	Leads  []leadDTO `json:"leads"`
}

type listLeadDeleteRequestDTO struct {
	ListID        uint64   `json:"listId"`
	LeadMemberIDs []string `json:"leadMemberIds"`
}

type listLeadDeleteByProfileURLRequestDTO struct {
	ListID      uint64   `json:"listId"`
	ProfileURLs []string `json:"profileUrls"`
}

type listLeadDeleteByProfileURLResponseDTO struct {
	NotFoundInList []string `json:"notFoundInList"`
}

type leadGetRequestDTO struct {
	ProfileURL string `json:"profileUrl"`
}

type leadListsRequestDTO struct {
	Email      string `json:"email,omitempty"`
	LinkedInID string `json:"linkedinId,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
	Offset     uint32 `json:"offset"`
	Limit      uint32 `json:"limit"`
}

type leadListSummaryDTO struct {
	ListID   uint64 `json:"listId"`
	ListName string `json:"listName"`
}

type leadTagsResponseDTO struct {
	Tags []string `json:"tags"`
}

type replaceTagsRequestDTO struct {
	LeadProfileURL         string   `json:"leadProfileUrl,omitempty"`
	LeadLinkedInID         string   `json:"leadLinkedInId,omitempty"`
	Tags                   []string `json:"tags"`
	CreateTagIfNotExisting bool     `json:"createTagIfNotExisting"`
}

type replaceTagsResponseDTO struct {
	NewAssignedTags []string `json:"newAssignedTags"`
}

type inboxFiltersDTO struct {
	LinkedInAccountIDs []uint32 `json:"linkedInAccountIds"`
	CampaignIDs        []uint64 `json:"campaignIds"`
	SearchString       string   `json:"searchString,omitempty"`
	LeadLinkedInID     string   `json:"leadLinkedInId,omitempty"`
	LeadProfileURL     string   `json:"leadProfileUrl,omitempty"`
	Seen               *bool    `json:"seen,omitempty"`
}

type conversationsRequestDTO struct {
	Filters inboxFiltersDTO `json:"filters"`
	Offset  uint32          `json:"offset"`
	Limit   uint32          `json:"limit"`
}

// The API names the conversation identifier "id" and the seen flag "read".
type conversationSummaryDTO struct {
	ConversationID     string  `json:"id"`
	LinkedInAccountID  uint32  `json:"linkedInAccountId"`
	LeadProfileURL     *string `json:"leadProfileUrl"`
	LastMessageSnippet *string `json:"lastMessageSnippet"`
	Seen               bool    `json:"read"`
}

type sendMessageRequestDTO struct {
	Message           string `json:"message"`
	Subject           string `json:"subject,omitempty"`
	ConversationID    string `json:"id"`
	LinkedInAccountID uint32 `json:"linkedInAccountId"`
}

type linkedInAccountFilterDTO struct {
	Offset  uint32 `json:"offset"`
	Limit   uint32 `json:"limit"`
	Keyword string `json:"keyword,omitempty"`
}

type linkedInAccountDTO struct {
	ID               uint32 `json:"id"`
	EmailAddress     string `json:"emailAddress"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	IsActive         bool   `json:"isActive"`
	ActiveCampaigns  uint32 `json:"activeCampaigns"`
	AuthIsValid      bool   `json:"authIsValid"`
	IsValidNavigator bool   `json:"isValidNavigator"`
	IsValidRecruiter bool   `json:"isValidRecruiter"`
}

type webhookDTO struct {
	ID          uint64   `json:"id"`
	WebhookName string   `json:"webhookName"`
	WebhookURL  string   `json:"webhookUrl"`
	EventType   string   `json:"eventType"`
	CampaignIDs []uint64 `json:"campaignIds"`
	IsActive    bool     `json:"isActive"`
}

type createWebhookRequestDTO struct {
	WebhookName string   `json:"webhookName"`
	WebhookURL  string   `json:"webhookUrl"`
	EventType   string   `json:"eventType"`
	CampaignIDs []uint64 `json:"campaignIds"`
	IsActive    bool     `json:"isActive"`
}

type webhookFilterDTO struct {
	Offset uint32 `json:"offset"`
	Limit  uint32 `json:"limit"`
}
