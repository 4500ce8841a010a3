package webhook

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"

	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

const (
	resultAccepted     = "accepted"
	resultRejected     = "rejected"
	resultUnauthorized = "unauthorized"
	resultError        = "error"
)

var eventsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "heyreach_webhook_events_total",
		Help: "Number of HeyReach webhook deliveries by event type and result.",
	},
	[]string{"event_type", "result"},
)

func init() {
	metrics.Registry.MustRegister(eventsTotal)
}

func recordEvent(eventType heyreach.WebhookEventType, status int) {
	eventsTotal.WithLabelValues(eventType.String(), resultForStatus(status)).Inc()
}

func resultForStatus(status int) string {
	switch {
	case status < http.StatusBadRequest:
		return resultAccepted
	case status == http.StatusUnauthorized:
		return resultUnauthorized
	case status >= http.StatusInternalServerError:
		return resultError
	default:
		return resultRejected
	}
}
