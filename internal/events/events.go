package events

import "github.com/Sunnycharan27/loopyncapp/internal/models"

// Event is a realtime frame pushed to a connected session.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Server-initiated event types.
const (
	TypeMessage        = "message"
	TypeMessageEdited  = "message_edited"
	TypeMessageDeleted = "message_deleted"
	TypeRead           = "read"
	TypeTyping         = "typing"
	TypeFriendRequest  = "friend_request"
	TypeFriendEvent    = "friend_event"
)

// Effect is one deferred side effect of a state transition. Services collect
// effects during the operation and hand them to the Dispatcher after the
// storage writes succeed, so the side-effect list stays enumerable and
// testable apart from storage.
type Effect interface {
	isEffect()
}

// Notify persists a notification for a user.
type Notify struct {
	Notification *models.Notification
}

func (Notify) isEffect() {}

// Emit pushes a realtime event to a user's connected sessions.
type Emit struct {
	UserID string
	Event  Event
}

func (Emit) isEffect() {}
