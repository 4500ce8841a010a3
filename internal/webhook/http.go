package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	logf "sigs.k8s.io/controller-runtime/pkg/log"
	ctrlwebhook "sigs.k8s.io/controller-runtime/pkg/webhook"

	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

// SecretHeader carries the shared secret configured on the HeyReach webhook URL.
const SecretHeader = "X-Webhook-Secret"

// Webhook receives HeyReach webhook deliveries and dispatches them to Handler.
type Webhook struct {
	Handler  Handler
	Endpoint string
	secret   string // empty disables the shared secret check
}

type Request struct {
	Type  heyreach.WebhookEventType
	Event *heyreach.WebhookEvent
}

type Response struct {
	HttpStatus int `json:"HttpStatus"`
}

type HandlerFunc func(context.Context, Request) Response

func (f HandlerFunc) Handle(ctx context.Context, req Request) Response {
	return f(ctx, req)
}

type Handler interface {
	Handle(context.Context, Request) Response
}

// SetupWithServer registers the webhook on the server's mux.
func (wh *Webhook) SetupWithServer(server ctrlwebhook.Server) {
	server.Register(wh.Endpoint, wh)
}

func (wh *Webhook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logf.FromContext(r.Context()).WithName("heyreach-http-webhook")
	log.V(1).Info("Handling request", "method", r.Method, "remoteAddr", r.RemoteAddr)

	eventType := heyreach.WebhookEventTypeUnknown

	// panic recovery
	defer func() {
		if rec := recover(); rec != nil {
			log.Error(nil, "Panic in webhook handler", "panic", rec)
			wh.writeResponse(w, eventType, InternalServerErrorResponse())
		}
	}()

	if r.Method != http.MethodPost {
		log.Info("Method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodPost)
		wh.writeResponse(w, eventType, MethodNotAllowedResponse())
		return
	}

	if wh.secret != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(SecretHeader)), []byte(wh.secret)) != 1 {
		log.Info("Rejecting delivery with a missing or wrong secret")
		wh.writeResponse(w, eventType, UnauthorizedResponse())
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error(err, "Failed to read request body")
		wh.writeResponse(w, eventType, BadRequestResponse())
		return
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Error(err, "Failed to close request body")
		}
	}()

	var event heyreach.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Error(err, "Failed to parse webhook event")
		wh.writeResponse(w, eventType, BadRequestResponse())
		return
	}

	eventType = event.Type()
	if eventType == heyreach.WebhookEventTypeUnknown {
		log.Info("Unknown event type", "eventType", event.EventType)
		wh.writeResponse(w, eventType, BadRequestResponse())
		return
	}

	log.V(1).Info("Parsed event", "eventType", eventType.String(), "timestamp", event.Timestamp)
	response := wh.Handler.Handle(r.Context(), Request{Type: eventType, Event: &event})
	wh.writeResponse(w, eventType, response)
}

func (wh *Webhook) writeResponse(w http.ResponseWriter, eventType heyreach.WebhookEventType, response Response) {
	recordEvent(eventType, response.HttpStatus)
	w.WriteHeader(response.HttpStatus)
}
