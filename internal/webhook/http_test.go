package webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

var _ = Describe("Webhook", func() {
	var (
		wh       *Webhook
		received []Request
	)

	deliver := func(method, body string, headers map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, DefaultEndpoint, strings.NewReader(body))
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		rec := httptest.NewRecorder()
		wh.ServeHTTP(rec, req)
		return rec
	}

	BeforeEach(func() {
		received = nil
		wh = &Webhook{
			Endpoint: DefaultEndpoint,
			Handler: HandlerFunc(func(_ context.Context, req Request) Response {
				received = append(received, req)
				return OkResponse()
			}),
		}
	})

	It("dispatches events whose type is spelled as a synonym", func() {
		rec := deliver(http.MethodPost, `{"event_type": "connection_request_sent", "lead": {"profileUrl": "https://linkedin.com/in/ada"}}`, nil)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(received).To(HaveLen(1))
		Expect(received[0].Type).To(Equal(heyreach.WebhookEventTypeConnectionRequestSent))
		Expect(received[0].Event.Lead.ProfileURL).To(Equal("https://linkedin.com/in/ada"))
	})

	It("rejects methods other than POST", func() {
		rec := deliver(http.MethodGet, "", nil)

		Expect(rec.Code).To(Equal(http.StatusMethodNotAllowed))
		Expect(rec.Header().Get("Allow")).To(Equal(http.MethodPost))
		Expect(received).To(BeEmpty())
	})

	It("rejects invalid JSON and unknown event types", func() {
		Expect(deliver(http.MethodPost, `{not json`, nil).Code).To(Equal(http.StatusBadRequest))
		Expect(deliver(http.MethodPost, `{"eventType": "EVERY_ACTION"}`, nil).Code).To(Equal(http.StatusBadRequest))
		Expect(received).To(BeEmpty())
	})

	It("rejects an unreadable body", func() {
		req := httptest.NewRequest(http.MethodPost, DefaultEndpoint, failingReader{})
		rec := httptest.NewRecorder()
		wh.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("turns a handler panic into a 500", func() {
		wh.Handler = HandlerFunc(func(context.Context, Request) Response {
			panic("boom")
		})

		rec := deliver(http.MethodPost, `{"eventType": "MessageSent"}`, nil)
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
	})

	Context("with a shared secret", func() {
		BeforeEach(func() {
			wh.secret = "s3cret"
		})

		It("accepts the matching secret", func() {
			rec := deliver(http.MethodPost, `{"eventType": "MessageReplied"}`, map[string]string{SecretHeader: "s3cret"})
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("rejects a wrong or missing secret", func() {
			Expect(deliver(http.MethodPost, `{"eventType": "MessageReplied"}`, map[string]string{SecretHeader: "guess"}).Code).
				To(Equal(http.StatusUnauthorized))
			Expect(deliver(http.MethodPost, `{"eventType": "MessageReplied"}`, nil).Code).
				To(Equal(http.StatusUnauthorized))
			Expect(received).To(BeEmpty())
		})
	})

	It("counts deliveries by event type and result", func() {
		accepted := eventsTotal.WithLabelValues("ConnectionAccepted", resultAccepted)
		rejected := eventsTotal.WithLabelValues("Unknown", resultRejected)
		acceptedBefore := testutil.ToFloat64(accepted)
		rejectedBefore := testutil.ToFloat64(rejected)

		deliver(http.MethodPost, `{"eventType": "connection-accepted"}`, nil)
		deliver(http.MethodPost, `{"eventType": "nope"}`, nil)

		Expect(testutil.ToFloat64(accepted)).To(Equal(acceptedBefore + 1))
		Expect(testutil.ToFloat64(rejected)).To(Equal(rejectedBefore + 1))
	})
})

var _ = Describe("NewHeyReachEventWebhookV1", func() {
	var wh *Webhook

	BeforeEach(func() {
		wh = NewHeyReachEventWebhookV1("", "")
	})

	handle := func(event heyreach.WebhookEvent) int {
		return wh.Handler.Handle(context.Background(), Request{Type: event.Type(), Event: &event}).HttpStatus
	}

	It("uses the default endpoint", func() {
		Expect(wh.Endpoint).To(Equal(DefaultEndpoint))
	})

	It("accepts connection events for a lead", func() {
		Expect(handle(heyreach.WebhookEvent{
			EventType: "ConnectionAccepted",
			Lead:      &heyreach.EventLead{ProfileURL: "https://linkedin.com/in/ada"},
			Campaign:  &heyreach.EventCampaign{ID: 4, Name: "Founders"},
			Sender:    &heyreach.EventSender{ID: 7},
		})).To(Equal(http.StatusOK))
	})

	It("requires a lead", func() {
		Expect(handle(heyreach.WebhookEvent{EventType: "ConnectionAccepted"})).To(Equal(http.StatusBadRequest))
	})

	It("requires a conversation for message events", func() {
		lead := &heyreach.EventLead{ProfileURL: "https://linkedin.com/in/ada"}
		Expect(handle(heyreach.WebhookEvent{EventType: "MessageReplied", Lead: lead})).To(Equal(http.StatusBadRequest))
		Expect(handle(heyreach.WebhookEvent{EventType: "MessageReplied", Lead: lead, ConversationID: "conv-1"})).To(Equal(http.StatusOK))
	})
})

var _ = Describe("resultForStatus", func() {
	DescribeTable("maps status codes to results",
		func(status int, want string) {
			Expect(resultForStatus(status)).To(Equal(want))
		},
		Entry("ok", http.StatusOK, resultAccepted),
		Entry("bad request", http.StatusBadRequest, resultRejected),
		Entry("method not allowed", http.StatusMethodNotAllowed, resultRejected),
		Entry("unauthorized", http.StatusUnauthorized, resultUnauthorized),
		Entry("internal error", http.StatusInternalServerError, resultError),
	)
})
