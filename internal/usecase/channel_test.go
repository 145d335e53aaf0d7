package usecase

import (
	"testing"

	"swirl/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestMessage_SubjectAndPushBody(t *testing.T) {
	actor := &entity.User{Email: "alice@example.com", DisplayName: "Alice"}

	tests := []struct {
		action  entity.ActionKind
		subject string
		body    string
	}{
		{entity.ActionFollow, "Alice started following you", "Alice started following you"},
		{entity.ActionComment, "Alice commented on your post", "Alice commented on your post"},
		{entity.ActionReply, "Alice replied to your comment", "Alice replied to your comment"},
		{entity.ActionReaction, "Alice reacted to your post", "Alice reacted to your post"},
		{entity.ActionBookmark, "Alice bookmarked your post", "Alice bookmarked your post"},
		{entity.ActionSignUp, "Welcome to Swirl!", "Welcome to Swirl! Get started by exploring posts."},
		{entity.ActionLogIn, "Welcome back to Swirl!", "Welcome back! Check out what's new."},
		{"poke", "You have a new notification", "You have a new notification"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			msg := &Message{Notification: &entity.Notification{Action: tt.action}, Actor: actor}

			assert.Equal(t, tt.subject, msg.Subject())
			assert.Equal(t, tt.body, msg.PushBody())
		})
	}
}

func TestMessage_ActorNameFallbacks(t *testing.T) {
	withEmail := &Message{Actor: &entity.User{Email: "alice@example.com"}}
	assert.Equal(t, "alice@example.com", withEmail.ActorName())

	missing := &Message{}
	assert.Equal(t, "Someone", missing.ActorName())
}
