package heyreach_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
	"k8s.io/utils/ptr"

	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

const apiKey = "test-key"

var _ = Describe("Client", func() {
	var (
		server *ghttp.Server
		client heyreach.API
		ctx    context.Context
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		sdk, err := heyreach.NewSDK(heyreach.WithBaseURL(server.URL()))
		Expect(err).NotTo(HaveOccurred())
		client = sdk
		ctx = context.Background()
	})

	AfterEach(func() {
		server.Close()
	})

	authenticated := func(method, path string, rawQuery ...string) http.HandlerFunc {
		return ghttp.CombineHandlers(
			ghttp.VerifyRequest(method, path, rawQuery...),
			ghttp.VerifyHeaderKV("X-API-KEY", apiKey),
			ghttp.VerifyContentType("application/json"),
		)
	}

	Describe("campaigns", func() {
		const items = `[{
			"id": 42,
			"name": "Founders",
			"creationTime": "2024-07-01T10:00:00Z",
			"campaignAccountIds": [7],
			"status": "ACTIVE",
			"progressStats": {
				"totalUsers": 3,
				"totalUsersInProgress": 1,
				"totalUsersPending": 1,
				"totalUsersFinished": 1,
				"totalUsersFailed": 0
			}
		}]`

		It("reads both envelope shapes into identical pages", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					authenticated(http.MethodPost, "/api/public/campaign/GetAll"),
					ghttp.RespondWith(http.StatusOK, `{"totalCount": 5, "items": `+items+`}`),
				),
				ghttp.CombineHandlers(
					authenticated(http.MethodPost, "/api/public/campaign/GetAll"),
					ghttp.RespondWith(http.StatusOK, `{"page": {"offset": 0, "limit": 1, "totalCount": 5}, "items": `+items+`}`),
				),
			)

			direct, err := client.GetCampaigns(ctx, apiKey, heyreach.CampaignFilter{Limit: 1})
			Expect(err).NotTo(HaveOccurred())
			nested, err := client.GetCampaigns(ctx, apiKey, heyreach.CampaignFilter{Limit: 1})
			Expect(err).NotTo(HaveOccurred())

			Expect(direct.TotalCount).To(Equal(uint32(5)))
			Expect(direct).To(Equal(nested))

			campaign := direct.Items[0]
			Expect(campaign.Status).To(Equal(heyreach.CampaignStatusActive))
			Expect(campaign.ProgressStats).NotTo(BeNil())
			Expect(campaign.ProgressStats.TotalUsersManuallyStopped).To(BeZero())
			Expect(campaign.ProgressStats.TotalUsersExcluded).To(BeZero())
		})

		It("sends status and account filters as sorted sets", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/campaign/GetAll"),
				ghttp.VerifyJSON(`{"offset":0,"limit":10,"keyword":"q3","statuses":["draft","paused"],"accountIds":[1,2]}`),
				ghttp.RespondWith(http.StatusOK, `{"totalCount": 0, "items": []}`),
			))

			page, err := client.GetCampaigns(ctx, apiKey, heyreach.CampaignFilter{
				Limit:      10,
				Keyword:    "q3",
				Statuses:   []heyreach.CampaignStatus{heyreach.CampaignStatusPaused, heyreach.CampaignStatusDraft},
				AccountIDs: []uint32{2, 1, 2},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(BeEmpty())
			Expect(page.Items).NotTo(BeNil())
		})

		It("fetches one campaign by id", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodGet, "/api/public/campaign/GetById", "campaignId=42"),
				ghttp.RespondWith(http.StatusOK, `{"id": 42, "name": "Founders", "status": "FINISHED", "campaignAccountIds": null}`),
			))

			campaign, err := client.GetCampaign(ctx, apiKey, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(campaign.ID).To(Equal(uint64(42)))
			Expect(campaign.Status).To(Equal(heyreach.CampaignStatusFinished))
			Expect(campaign.CampaignAccountIDs).To(BeEmpty())
			Expect(campaign.ProgressStats).To(BeNil())
		})

		It("pauses and resumes without reading the body", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					authenticated(http.MethodPost, "/api/public/campaign/Pause", "campaignId=42"),
					ghttp.RespondWith(http.StatusOK, "ok"),
				),
				ghttp.CombineHandlers(
					authenticated(http.MethodPost, "/api/public/campaign/Resume", "campaignId=42"),
					ghttp.RespondWith(http.StatusOK, nil),
				),
			)

			Expect(client.PauseCampaign(ctx, apiKey, 42)).To(Succeed())
			Expect(client.ResumeCampaign(ctx, apiKey, 42)).To(Succeed())
			Expect(server.ReceivedRequests()).To(HaveLen(2))
		})

		It("distinguishes the v1 count from the v2 breakdown", func() {
			request := heyreach.CampaignAddLeadsRequest{
				CampaignID: 42,
				AccountLeadPairs: []heyreach.AccountLeadPair{
					{
						LinkedInAccountID: ptr.To[uint32](7),
						Lead:              heyreach.Lead{FirstName: "Ada", LastName: "Lovelace", ProfileURL: "https://linkedin.com/in/ada"},
					},
					{
						Lead: heyreach.Lead{FirstName: "Alan", LastName: "Turing", ProfileURL: "https://linkedin.com/in/alan"},
					},
				},
			}
			wantBody := `{
				"campaignId": 42,
				"accountLeadPairs": [
					{"linkedInAccountId": 7, "lead": {"firstName": "Ada", "lastName": "Lovelace", "profileUrl": "https://linkedin.com/in/ada", "customUserFields": []}},
					{"lead": {"firstName": "Alan", "lastName": "Turing", "profileUrl": "https://linkedin.com/in/alan", "customUserFields": []}}
				]
			}`

			server.AppendHandlers(
				ghttp.CombineHandlers(
					authenticated(http.MethodPost, "/api/public/campaign/AddLeadsToCampaign"),
					ghttp.VerifyJSON(wantBody),
					ghttp.RespondWith(http.StatusOK, `2`),
				),
				ghttp.CombineHandlers(
					authenticated(http.MethodPost, "/api/public/campaign/AddLeadsToCampaignV2"),
					ghttp.VerifyJSON(wantBody),
					ghttp.RespondWith(http.StatusOK, `{"addedLeadsCount": 1, "updatedLeadsCount": 1, "failedLeadsCount": 0}`),
				),
			)

			added, err := client.AddLeadsToCampaign(ctx, apiKey, request)
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(Equal(uint32(2)))

			result, err := client.AddLeadsToCampaignV2(ctx, apiKey, request)
			Expect(err).NotTo(HaveOccurred())
			Expect(*result).To(Equal(heyreach.AddLeadsResult{AddedLeadsCount: 1, UpdatedLeadsCount: 1}))
		})
	})

	Describe("lists", func() {
		It("parses list types liberally", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/list/GetAll"),
				ghttp.VerifyJSON(`{"offset": 0, "limit": 3}`),
				ghttp.RespondWith(http.StatusOK, `{"totalCount": 3, "items": [
					{"id": 1, "name": "People", "listType": "LEADS", "campaignIds": [4]},
					{"id": 2, "name": "Orgs", "listType": "Companies"},
					{"id": 3, "name": "Legacy", "listType": "USER_LIST"}
				]}`),
			))

			page, err := client.GetLists(ctx, apiKey, heyreach.ListFilter{Limit: 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(HaveLen(3))
			Expect(page.Items[0].ListType).To(Equal(heyreach.ListTypeLeads))
			Expect(page.Items[1].ListType).To(Equal(heyreach.ListTypeCompanies))
			Expect(page.Items[2].ListType).To(Equal(heyreach.ListTypeUnknown))
			Expect(page.Items[1].CampaignIDs).NotTo(BeNil())
		})

		It("keeps a lead whose fields have the wrong type", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/list/GetLeadsFromList"),
				ghttp.VerifyJSON(`{"listId": 9, "offset": 0, "limit": 2}`),
				ghttp.RespondWith(http.StatusOK, `{"totalCount": 2, "items": [
					{"firstName": "Ada", "lastName": "Lovelace", "profileUrl": "https://linkedin.com/in/ada"},
					{"firstName": 12, "lastName": "Turing", "profileUrl": "https://linkedin.com/in/alan"}
				]}`),
			))

			page, err := client.GetListLeads(ctx, apiKey, heyreach.ListLeadsRequest{ListID: 9, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(HaveLen(2))
			Expect(page.Items[1].FirstName).To(BeEmpty())
			Expect(page.Items[1].LastName).To(Equal("Turing"))
		})

		It("reports unknown profile URLs without failing", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodDelete, "/api/public/list/DeleteLeadsFromListByProfileUrl"),
				ghttp.VerifyJSON(`{"listId": 9, "profileUrls": ["https://linkedin.com/in/a", "https://linkedin.com/in/b", "https://linkedin.com/in/c"]}`),
				ghttp.RespondWith(http.StatusOK, `{"notFoundInList": ["https://linkedin.com/in/b"]}`),
			))

			result, err := client.DeleteLeadsFromListByProfileURL(ctx, apiKey, heyreach.ListLeadDeleteByProfileURLRequest{
				ListID:      9,
				ProfileURLs: []string{"https://linkedin.com/in/a", "https://linkedin.com/in/b", "https://linkedin.com/in/c"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.NotFoundInList).To(ConsistOf("https://linkedin.com/in/b"))
		})

		It("deletes members by id and adds leads in both versions", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					authenticated(http.MethodDelete, "/api/public/list/DeleteLeadsFromList"),
					ghttp.VerifyJSON(`{"listId": 9, "leadMemberIds": []}`),
					ghttp.RespondWith(http.StatusOK, nil),
				),
				ghttp.CombineHandlers(
					authenticated(http.MethodPost, "/api/public/list/AddLeadsToList"),
					ghttp.VerifyJSON(`{"listId": 9, "leads": []}`),
					ghttp.RespondWith(http.StatusOK, nil),
				),
				ghttp.CombineHandlers(
					authenticated(http.MethodPost, "/api/public/list/AddLeadsToListV2"),
					ghttp.RespondWith(http.StatusOK, `{"addedLeadsCount": 0, "updatedLeadsCount": 0, "failedLeadsCount": 1}`),
				),
			)

			Expect(client.DeleteLeadsFromList(ctx, apiKey, heyreach.ListLeadDeleteRequest{ListID: 9})).To(Succeed())
			Expect(client.AddLeadsToList(ctx, apiKey, 9, nil)).To(Succeed())
			result, err := client.AddLeadsToListV2(ctx, apiKey, 9, []heyreach.Lead{{ProfileURL: "https://linkedin.com/in/x"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.FailedLeadsCount).To(Equal(uint32(1)))
		})
	})

	Describe("leads", func() {
		It("trusts the tag set returned by a replacement", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/lead/ReplaceTags"),
				ghttp.VerifyJSON(`{"leadProfileUrl": "https://linkedin.com/in/ada", "tags": ["vip", "new-tag"], "createTagIfNotExisting": false}`),
				ghttp.RespondWith(http.StatusOK, `{"newAssignedTags": ["vip"]}`),
			))

			result, err := client.ReplaceLeadTags(ctx, apiKey, heyreach.ReplaceTagsRequest{
				LeadProfileURL: "https://linkedin.com/in/ada",
				Tags:           []string{"vip", "new-tag"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.NewAssignedTags).To(Equal([]string{"vip"}))
		})

		It("looks up lists for a lead by LinkedIn id", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/list/GetListsForLead"),
				ghttp.VerifyJSON(`{"linkedinId": "ACoAA", "offset": 0, "limit": 10}`),
				ghttp.RespondWith(http.StatusOK, `{"totalCount": 1, "items": [{"listId": 3, "listName": "VIPs"}]}`),
			))

			page, err := client.GetListsForLead(ctx, apiKey, heyreach.LeadListsRequest{LinkedInID: "ACoAA", Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(Equal([]heyreach.LeadListSummary{{ListID: 3, ListName: "VIPs"}}))
		})

		It("returns empty tags as an empty slice", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/lead/GetTags"),
				ghttp.VerifyJSON(`{"profileUrl": "https://linkedin.com/in/ada"}`),
				ghttp.RespondWith(http.StatusOK, `{"tags": null}`),
			))

			tags, err := client.GetLeadTags(ctx, apiKey, "https://linkedin.com/in/ada")
			Expect(err).NotTo(HaveOccurred())
			Expect(tags.Tags).To(BeEmpty())
			Expect(tags.Tags).NotTo(BeNil())
		})

		It("surfaces a missing lead as NotFound", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/lead/GetLead"),
				ghttp.RespondWith(http.StatusNotFound, `{"message": "Lead not found"}`),
			))

			_, err := client.GetLead(ctx, apiKey, "https://linkedin.com/in/nobody")
			Expect(heyreach.IsNotFound(err)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("Lead not found")))
		})
	})

	Describe("inbox", func() {
		It("maps the conversation id and read flag", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/inbox/GetConversationsV2"),
				ghttp.VerifyJSON(`{"filters": {"linkedInAccountIds": [], "campaignIds": []}, "offset": 0, "limit": 5}`),
				ghttp.RespondWith(http.StatusOK, `{"totalCount": 1, "items": [
					{"id": "conv-1", "linkedInAccountId": 7, "leadProfileUrl": null, "lastMessageSnippet": "hi", "read": true}
				]}`),
			))

			page, err := client.GetConversations(ctx, apiKey, heyreach.ConversationsRequest{Limit: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(HaveLen(1))
			Expect(page.Items[0].ConversationID).To(Equal("conv-1"))
			Expect(page.Items[0].Seen).To(BeTrue())
			Expect(page.Items[0].LeadProfileURL).To(BeNil())
			Expect(page.Items[0].LastMessageSnippet).To(Equal(ptr.To("hi")))
		})

		It("sends a message into a conversation", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/inbox/SendMessage"),
				ghttp.VerifyJSON(`{"message": "Thanks!", "id": "conv-1", "linkedInAccountId": 7}`),
				ghttp.RespondWith(http.StatusOK, nil),
			))

			Expect(client.SendMessage(ctx, apiKey, heyreach.SendMessageRequest{
				Message:           "Thanks!",
				ConversationID:    "conv-1",
				LinkedInAccountID: 7,
			})).To(Succeed())
		})
	})

	Describe("accounts", func() {
		It("keeps validity flags independent", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/li_account/GetAll"),
				ghttp.RespondWith(http.StatusOK, `{"totalCount": 1, "items": [
					{"id": 7, "emailAddress": "s@example.com", "isActive": true, "activeCampaigns": 2, "authIsValid": true, "isValidNavigator": false, "isValidRecruiter": true}
				]}`),
			))

			page, err := client.GetLinkedInAccounts(ctx, apiKey, heyreach.LinkedInAccountFilter{Limit: 1})
			Expect(err).NotTo(HaveOccurred())
			account := page.Items[0]
			Expect(account.AuthIsValid).To(BeTrue())
			Expect(account.IsValidNavigator).To(BeFalse())
			Expect(account.IsValidRecruiter).To(BeTrue())
			Expect(account.ActiveCampaigns).To(Equal(uint32(2)))
		})
	})

	Describe("webhooks", func() {
		It("sends the canonical event token and parses synonyms back", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/webhooks/CreateWebhook"),
				ghttp.VerifyJSON(`{
					"webhookName": "crm",
					"webhookUrl": "https://hooks.example.com/heyreach",
					"eventType": "ConnectionRequestSent",
					"campaignIds": [1, 5],
					"isActive": true
				}`),
				ghttp.RespondWith(http.StatusOK, `{
					"id": 11,
					"webhookName": "crm",
					"webhookUrl": "https://hooks.example.com/heyreach",
					"eventType": "connection_request_sent",
					"campaignIds": [1, 5],
					"isActive": true
				}`),
			))

			webhook, err := client.CreateWebhook(ctx, apiKey, heyreach.CreateWebhookRequest{
				WebhookName: "crm",
				WebhookURL:  "https://hooks.example.com/heyreach",
				EventType:   heyreach.WebhookEventTypeConnectionRequestSent,
				CampaignIDs: []uint64{5, 1, 5},
				IsActive:    true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(webhook.ID).To(Equal(uint64(11)))
			Expect(webhook.EventType).To(Equal(heyreach.WebhookEventTypeConnectionRequestSent))
		})

		It("gets, lists and deletes webhooks", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					authenticated(http.MethodGet, "/api/public/webhooks/GetWebhookById", "webhookId=11"),
					ghttp.RespondWith(http.StatusOK, `{"id": 11, "eventType": "message-replied"}`),
				),
				ghttp.CombineHandlers(
					authenticated(http.MethodPost, "/api/public/webhooks/GetAllWebhooks"),
					ghttp.VerifyJSON(`{"offset": 0, "limit": 10}`),
					ghttp.RespondWith(http.StatusOK, `{"totalCount": 1, "items": [{"id": 11, "eventType": "MessageReplied"}]}`),
				),
				ghttp.CombineHandlers(
					authenticated(http.MethodDelete, "/api/public/webhooks/DeleteWebhook", "webhookId=11"),
					ghttp.RespondWith(http.StatusOK, nil),
				),
			)

			webhook, err := client.GetWebhook(ctx, apiKey, 11)
			Expect(err).NotTo(HaveOccurred())
			Expect(webhook.EventType).To(Equal(heyreach.WebhookEventTypeMessageReplied))

			page, err := client.GetWebhooks(ctx, apiKey, heyreach.WebhookFilter{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items[0]).To(Equal(*webhook))

			Expect(client.DeleteWebhook(ctx, apiKey, 11)).To(Succeed())
		})
	})

	Describe("errors", func() {
		It("classifies rate limiting with the server message", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/campaign/GetAll"),
				ghttp.RespondWith(http.StatusTooManyRequests, `{"message": "rate limited"}`),
			))

			_, err := client.GetCampaigns(ctx, apiKey, heyreach.CampaignFilter{})
			Expect(heyreach.IsTooManyRequests(err)).To(BeTrue())
			Expect(heyreach.KindOf(err)).To(Equal(heyreach.ErrorKindTooManyRequests))

			var apiErr *heyreach.Error
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.Message).To(Equal("rate limited"))
			Expect(apiErr.StatusCode).To(Equal(http.StatusTooManyRequests))
		})

		It("rejects an envelope whose shape is wrong", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				authenticated(http.MethodPost, "/api/public/campaign/GetAll"),
				ghttp.RespondWith(http.StatusOK, `{"totalCount": "many", "items": []}`),
			))

			_, err := client.GetCampaigns(ctx, apiKey, heyreach.CampaignFilter{})
			Expect(heyreach.KindOf(err)).To(Equal(heyreach.ErrorKindUnknown))
			Expect(err).To(MatchError(ContainSubstring("failed to decode response")))
		})

		It("honours context cancellation", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			err := client.CheckAPIKey(cancelled, apiKey)
			Expect(err).To(HaveOccurred())
			Expect(heyreach.KindOf(err)).To(Equal(heyreach.ErrorKindUnknown))
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})
})

var _ = Describe("WebhookEvent", func() {
	It("decodes camelCase deliveries", func() {
		var event heyreach.WebhookEvent
		Expect(json.Unmarshal([]byte(`{
			"eventType": "MessageReplied",
			"timestamp": "2024-07-01T10:00:00Z",
			"campaign": {"id": 4, "name": "Founders"},
			"sender": {"id": 7, "firstName": "Sam", "lastName": "Sender"},
			"lead": {"profileUrl": "https://linkedin.com/in/ada", "firstName": "Ada", "lastName": "Lovelace"},
			"conversationId": "conv-1",
			"messageText": "Sounds good"
		}`), &event)).To(Succeed())

		Expect(event.Type()).To(Equal(heyreach.WebhookEventTypeMessageReplied))
		Expect(event.Campaign).To(Equal(&heyreach.EventCampaign{ID: 4, Name: "Founders"}))
		Expect(event.Lead.ProfileURL).To(Equal("https://linkedin.com/in/ada"))
		Expect(event.MessageText).To(Equal("Sounds good"))
	})

	It("falls back to the snake_case event type", func() {
		var event heyreach.WebhookEvent
		Expect(json.Unmarshal([]byte(`{"event_type": "connection_accepted"}`), &event)).To(Succeed())
		Expect(event.EventType).To(Equal("connection_accepted"))
		Expect(event.Type()).To(Equal(heyreach.WebhookEventTypeConnectionAccepted))
	})

	It("reports unknown event types", func() {
		var event heyreach.WebhookEvent
		Expect(json.Unmarshal([]byte(`{"eventType": "EVERY_ACTION"}`), &event)).To(Succeed())
		Expect(event.Type()).To(Equal(heyreach.WebhookEventTypeUnknown))
	})
})
