package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ActionKind is the closed set of events that produce a notification.
type ActionKind string

const (
	ActionFollow   ActionKind = "follow"
	ActionComment  ActionKind = "comment"
	ActionReply    ActionKind = "reply"
	ActionReaction ActionKind = "reaction"
	ActionBookmark ActionKind = "bookmark"
	ActionSignUp   ActionKind = "sign_up"
	ActionLogIn    ActionKind = "log_in"
)

// ErrInvalidActionKind is returned for an action outside the closed set.
var ErrInvalidActionKind = errors.New("invalid action kind")

// ActionKinds lists every supported action in display order.
var ActionKinds = []ActionKind{
	ActionFollow,
	ActionComment,
	ActionReply,
	ActionReaction,
	ActionBookmark,
	ActionSignUp,
	ActionLogIn,
}

// IsValid reports whether k belongs to the closed set.
func (k ActionKind) IsValid() bool {
	switch k {
	case ActionFollow, ActionComment, ActionReply, ActionReaction, ActionBookmark, ActionSignUp, ActionLogIn:
		return true
	default:
		return false
	}
}

// IsAccountLevel reports whether k describes the recipient's own account rather than someone else's action.
func (k ActionKind) IsAccountLevel() bool {
	return k == ActionSignUp || k == ActionLogIn
}

// ParseActionKind validates a raw action string.
func ParseActionKind(s string) (ActionKind, error) {
	k := ActionKind(s)
	if !k.IsValid() {
		return "", errors.Wrapf(ErrInvalidActionKind, "%q", s)
	}

	return k, nil
}

// Channel identifies a delivery mechanism for a notification.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

// Notification is an in-app record of something another user did.
type Notification struct {
	ID          uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the notification.
	RecipientID uuid.UUID  `json:"recipient_id"` // The user who receives the notification.
	ActorID     uuid.UUID  `json:"actor_id"`     // The user who performed the action.
	Action      ActionKind `json:"action_type"`  // What the actor did.
	Target      Target     `json:"-"`            // The object the action applied to, nil for account-level events.
	IsRead      bool       `json:"is_read"`      // Flips to true once and never back.
	EmailSent   bool       `json:"email_sent"`   // Set after the email channel reported success.
	PushSent    bool       `json:"push_sent"`    // Set after the push channel reported success.
	CreatedAt   time.Time  `json:"created_at"`   // Ordering key, newest first.
}

// HasTarget reports whether the notification points at an object.
func (n *Notification) HasTarget() bool {
	return n.Target != nil
}

// MarkSent records a successful delivery on the given channel.
func (n *Notification) MarkSent(ch Channel) {
	switch ch {
	case ChannelEmail:
		n.EmailSent = true
	case ChannelPush:
		n.PushSent = true
	}
}

// Sent reports whether the given channel already delivered this notification.
func (n *Notification) Sent(ch Channel) bool {
	switch ch {
	case ChannelEmail:
		return n.EmailSent
	case ChannelPush:
		return n.PushSent
	default:
		return false
	}
}
