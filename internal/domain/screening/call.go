package screening

import (
	"time"

	"github.com/google/uuid"
)

// CallEvent is one incoming call presented for screening. An empty Number
// means the caller's number was not delivered (withheld or unavailable).
type CallEvent struct {
	ID         uuid.UUID `json:"id"`
	Number     string    `json:"number,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewCallEvent creates a call event with a fresh ID
func NewCallEvent(number string, receivedAt time.Time) CallEvent {
	return CallEvent{
		ID:         uuid.New(),
		Number:     number,
		ReceivedAt: receivedAt,
	}
}

// HasNumber reports whether the caller's number was delivered
func (e CallEvent) HasNumber() bool {
	return e.Number != ""
}

// Action is the screening outcome for one call
type Action int

const (
	ActionAllow Action = iota
	ActionRejectAndRespond
)

func (a Action) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionRejectAndRespond:
		return "reject_and_respond"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (a Action) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// Verdict is the engine's decision for one call event. Message is populated
// only for ActionRejectAndRespond; Reason records which rule produced the
// outcome, for logs and the decision trail.
type Verdict struct {
	Action  Action `json:"action"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Allow builds an allow verdict with the given reason
func Allow(reason string) Verdict {
	return Verdict{Action: ActionAllow, Reason: reason}
}

// RejectAndRespond builds a reject verdict carrying the text to send back
func RejectAndRespond(message, reason string) Verdict {
	return Verdict{Action: ActionRejectAndRespond, Message: message, Reason: reason}
}

// IsAllow reports whether the call goes through untouched
func (v Verdict) IsAllow() bool {
	return v.Action == ActionAllow
}
