package usecase

import (
	"context"
	"fmt"

	"swirl/internal/domain/entity"
)

const (
	fallbackActorName = "Someone"
	defaultSubject    = "You have a new notification"
)

// Message is everything a channel needs to deliver one notification
type Message struct {
	Notification *entity.Notification
	Recipient    *entity.User
	Actor        *entity.User
	URL          string
}

// Channel is a delivery mechanism. Send reports success and never panics or
// returns an error; failures are logged by the channel.
type Channel interface {
	Name() entity.Channel
	Send(ctx context.Context, msg *Message) bool
}

// ActorName is the name shown for the user who performed the action
func (m *Message) ActorName() string {
	if name := m.Actor.Name(); name != "" {
		return name
	}

	return fallbackActorName
}

// Subject is the email subject and push title for the message
func (m *Message) Subject() string {
	actor := m.ActorName()

	switch m.Notification.Action {
	case entity.ActionFollow:
		return fmt.Sprintf("%s started following you", actor)
	case entity.ActionComment:
		return fmt.Sprintf("%s commented on your post", actor)
	case entity.ActionReply:
		return fmt.Sprintf("%s replied to your comment", actor)
	case entity.ActionReaction:
		return fmt.Sprintf("%s reacted to your post", actor)
	case entity.ActionBookmark:
		return fmt.Sprintf("%s bookmarked your post", actor)
	case entity.ActionSignUp:
		return "Welcome to Swirl!"
	case entity.ActionLogIn:
		return "Welcome back to Swirl!"
	default:
		return defaultSubject
	}
}

// PushBody is the body text of the push notification
func (m *Message) PushBody() string {
	switch m.Notification.Action {
	case entity.ActionSignUp:
		return "Welcome to Swirl! Get started by exploring posts."
	case entity.ActionLogIn:
		return "Welcome back! Check out what's new."
	default:
		return m.Subject()
	}
}
