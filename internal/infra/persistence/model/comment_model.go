package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel is the GORM-specific struct for the 'comments' table.
// Deleting a comment cascades to its replies through the parent_id foreign key.
type CommentModel struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PostID     uuid.UUID     `gorm:"type:uuid;not null;index:idx_comments_post_parent,priority:1"`
	AuthorID   uuid.UUID     `gorm:"type:uuid;not null"`
	ParentID   *uuid.UUID    `gorm:"type:uuid;index:idx_comments_post_parent,priority:2;index"`
	Parent     *CommentModel `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Content    string        `gorm:"type:text;not null"`
	ReplyCount int           `gorm:"not null;default:0;check:chk_comments_reply_count,reply_count >= 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
