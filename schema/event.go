package schema

import (
	"time"
)

// Lifecycle event names
const (
	EventRequestCreated   = "request.created"
	EventRequestAccepted  = "request.accepted"
	EventRequestRejected  = "request.rejected"
	EventRequestCancelled = "request.cancelled"
	EventRequestCompleted = "request.completed"
	EventMatchCreated     = "match.created"
	EventMatchCompleted   = "match.completed"
	EventMatchCancelled   = "match.cancelled"
	EventSessionCompleted = "session.completed"
	EventRatingSubmitted  = "rating.submitted"
)

// Event - a discrete lifecycle state change, published for delivery
// collaborators (chat, broadcast, push). The engine only records what
// happened; delivery is entirely outside this service.
type Event struct {
	Name      string    `json:"name"`
	Actor     string    `json:"actor"`
	Subject   string    `json:"subject"`
	RequestID string    `json:"request_id,omitempty"`
	MatchID   string    `json:"match_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
