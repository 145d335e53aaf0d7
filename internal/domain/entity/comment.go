package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a comment on a post, optionally replying to another comment.
// Whether it is a reply is fixed at creation.
type Comment struct {
	ID         uuid.UUID  `json:"id"`
	PostID     uuid.UUID  `json:"post_id"`   // Immutable after creation.
	AuthorID   uuid.UUID  `json:"author_id"` // The user who wrote the comment.
	ParentID   *uuid.UUID `json:"parent_id"` // Nil for top-level comments.
	Content    string     `json:"content"`
	ReplyCount int        `json:"reply_count"` // Number of live direct replies.
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IsReply reports whether the comment answers another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
