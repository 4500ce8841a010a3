package heyreach

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// nonNil keeps empty collections as [] on the wire instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// campaignStatusTokens renders a status set as sorted, de-duplicated tokens.
func campaignStatusTokens(statuses []CampaignStatus) []string {
	tokens := sets.New[string]()
	for _, status := range statuses {
		tokens.Insert(status.String())
	}
	return sets.List(tokens)
}

// idSet de-duplicates and sorts an id filter.
func idSet[T uint32 | uint64](ids []T) []T {
	return sets.List(sets.New(ids...))
}

func toCampaignFilterDTO(filter CampaignFilter) campaignFilterDTO {
	return campaignFilterDTO{
		Offset:     filter.Offset,
		Limit:      filter.Limit,
		Keyword:    filter.Keyword,
		Statuses:   campaignStatusTokens(filter.Statuses),
		AccountIDs: idSet(filter.AccountIDs),
	}
}

func fromProgressStatsDTO(dto *progressStatsDTO) *ProgressStats {
	if dto == nil {
		return nil
	}
	return &ProgressStats{
		TotalUsers:                dto.TotalUsers,
		TotalUsersInProgress:      dto.TotalUsersInProgress,
		TotalUsersPending:         dto.TotalUsersPending,
		TotalUsersFinished:        dto.TotalUsersFinished,
		TotalUsersFailed:          dto.TotalUsersFailed,
		TotalUsersManuallyStopped: dto.TotalUsersManuallyStopped,
		TotalUsersExcluded:        dto.TotalUsersExcluded,
	}
}

func fromCampaignSummaryDTO(dto campaignSummaryDTO) CampaignSummary {
	return CampaignSummary{
		ID:                   dto.ID,
		Name:                 dto.Name,
		CreationTime:         dto.CreationTime,
		LinkedInUserListName: dto.LinkedInUserListName,
		LinkedInUserListID:   dto.LinkedInUserListID,
		CampaignAccountIDs:   nonNil(dto.CampaignAccountIDs),
		Status:               ParseCampaignStatus(dto.Status),
		ProgressStats:        fromProgressStatsDTO(dto.ProgressStats),

		ExcludeInOtherCampaigns:                   dto.ExcludeInOtherCampaigns,
		ExcludeHasOtherAccConversations:           dto.ExcludeHasOtherAccConversations,
		ExcludeContactedFromSenderInOtherCampaign: dto.ExcludeContactedFromSenderInOtherCampaign,
		ExcludeListID:                             dto.ExcludeListID,
		OrganizationUnitID:                        dto.OrganizationUnitID,

		ExcludeAlreadyMessagedGlobal:           dto.ExcludeAlreadyMessagedGlobal,
		ExcludeAlreadyMessagedCampaignAccounts: dto.ExcludeAlreadyMessagedCampaignAccounts,
		ExcludeFirstConnectionCampaignAccounts: dto.ExcludeFirstConnectionCampaignAccounts,
		ExcludeFirstConnectionGlobal:           dto.ExcludeFirstConnectionGlobal,
		ExcludeNoProfilePicture:                dto.ExcludeNoProfilePicture,
	}
}

func fromLeadDTO(dto leadDTO) Lead {
	lead := Lead{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		ProfileURL:   dto.ProfileURL,
		Location:     dto.Location,
		Summary:      dto.Summary,
		CompanyName:  dto.CompanyName,
		Position:     dto.Position,
		About:        dto.About,
		EmailAddress: dto.EmailAddress,
	}
	for _, field := range dto.CustomUserFields {
		lead.CustomUserFields = append(lead.CustomUserFields, CustomUserField(field))
	}
	return lead
}

func toLeadDTO(lead Lead) leadDTO {
	dto := leadDTO{
		FirstName:        lead.FirstName,
		LastName:         lead.LastName,
		ProfileURL:       lead.ProfileURL,
		Location:         lead.Location,
		Summary:          lead.Summary,
		CompanyName:      lead.CompanyName,
		Position:         lead.Position,
		About:            lead.About,
		EmailAddress:     lead.EmailAddress,
		CustomUserFields: make([]customUserFieldDTO, 0, len(lead.CustomUserFields)),
	}
	for _, field := range lead.CustomUserFields {
		dto.CustomUserFields = append(dto.CustomUserFields, customUserFieldDTO(field))
	}
	return dto
}

func toLeadDTOs(leads []Lead) []leadDTO {
	dtos := make([]leadDTO, 0, len(leads))
	for _, lead := range leads {
		dtos = append(dtos, toLeadDTO(lead))
	}
	return dtos
}

func toCampaignAddLeadsRequestDTO(req CampaignAddLeadsRequest) campaignAddLeadsRequestDTO {
	dto := campaignAddLeadsRequestDTO{
		CampaignID:       req.CampaignID,
		AccountLeadPairs: make([]accountLeadPairDTO, 0, len(req.AccountLeadPairs)),
	}
	for _, pair := range req.AccountLeadPairs {
		dto.AccountLeadPairs = append(dto.AccountLeadPairs, accountLeadPairDTO{
			LinkedInAccountID: pair.LinkedInAccountID,
			Lead:              toLeadDTO(pair.Lead),
		})
	}
	return dto
}

func fromAddLeadsResultDTO(dto addLeadsResultDTO) *AddLeadsResult {
	return &AddLeadsResult{
		AddedLeadsCount:   dto.AddedLeadsCount,
		UpdatedLeadsCount: dto.UpdatedLeadsCount,
		FailedLeadsCount:  dto.FailedLeadsCount,
	}
}

func fromListSummaryDTO(dto listSummaryDTO) ListSummary {
	return ListSummary{
		ID:              dto.ID,
		Name:            dto.Name,
		TotalItemsCount: dto.TotalItemsCount,
		ListType:        ParseListType(dto.ListType),
		CreationTime:    dto.CreationTime,
		CampaignIDs:     nonNil(dto.CampaignIDs),
	}
}

func fromLeadListSummaryDTO(dto leadListSummaryDTO) LeadListSummary {
	return LeadListSummary(dto)
}

func fromConversationSummaryDTO(dto conversationSummaryDTO) ConversationSummary {
	return ConversationSummary(dto)
}

func fromLinkedInAccountDTO(dto linkedInAccountDTO) LinkedInAccount {
	return LinkedInAccount{
		ID:               dto.ID,
		EmailAddress:     dto.EmailAddress,
		FirstName:        dto.FirstName,
		LastName:         dto.LastName,
		IsActive:         dto.IsActive,
		ActiveCampaigns:  dto.ActiveCampaigns,
		AuthIsValid:      dto.AuthIsValid,
		IsValidRecruiter: dto.IsValidRecruiter,
		IsValidNavigator: dto.IsValidNavigator,
	}
}

func fromWebhookDTO(dto webhookDTO) Webhook {
	return Webhook{
		ID:          dto.ID,
		WebhookName: dto.WebhookName,
		WebhookURL:  dto.WebhookURL,
		EventType:   ParseWebhookEventType(dto.EventType),
		CampaignIDs: nonNil(dto.CampaignIDs),
		IsActive:    dto.IsActive,
	}
}
