package heyreach

import "encoding/json"

// WebhookEvent is the payload HeyReach delivers to a registered webhook URL.
type WebhookEvent struct {
	EventType      string         `json:"eventType"`
	Timestamp      string         `json:"timestamp,omitempty"`
	Campaign       *EventCampaign `json:"campaign,omitempty"`
	Sender         *EventSender   `json:"sender,omitempty"`
	Lead           *EventLead     `json:"lead,omitempty"`
	ConversationID string         `json:"conversationId,omitempty"`
	MessageText    string         `json:"messageText,omitempty"`
}

// EventCampaign identifies the campaign that produced an event.
type EventCampaign struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// EventSender is the LinkedIn account that acted.
type EventSender struct {
	ID           uint32 `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// EventLead is the lead the event is about.
type EventLead struct {
	ProfileURL   string `json:"profileUrl"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	CompanyName  string `json:"companyName,omitempty"`
	Position     string `json:"position,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// Type parses the event type liberally; unknown types yield
// WebhookEventTypeUnknown.
func (e WebhookEvent) Type() WebhookEventType {
	return ParseWebhookEventType(e.EventType)
}

// UnmarshalJSON also accepts the snake_case "event_type" key some deliveries use.
func (e *WebhookEvent) UnmarshalJSON(data []byte) error {
	type plain WebhookEvent
	var decoded struct {
		plain
		SnakeEventType string `json:"event_type"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*e = WebhookEvent(decoded.plain)
	if e.EventType == "" {
		e.EventType = decoded.SnakeEventType
	}
	return nil
}
