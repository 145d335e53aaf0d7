package usecase

import (
	"context"

	"swirl/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentUsecase defines the interface for threaded comment use cases
type CommentUsecase interface {
	// CreateComment adds a top-level comment to a post
	CreateComment(ctx context.Context, postID, authorID uuid.UUID, content string) (*entity.Comment, error)

	// CreateReply adds a reply under parentID and increments the parent's reply count
	CreateReply(ctx context.Context, parentID, authorID uuid.UUID, content string) (*entity.Comment, error)

	// GetComment retrieves a single comment
	GetComment(ctx context.Context, commentID uuid.UUID) (*entity.Comment, error)

	// UpdateComment replaces the content of one of the requester's comments
	UpdateComment(ctx context.Context, commentID, requesterID uuid.UUID, content string) (*entity.Comment, error)

	// DeleteComment removes the comment with all of its descendants and
	// returns how many comments were removed
	DeleteComment(ctx context.Context, commentID, requesterID uuid.UUID) (int64, error)

	// ListTopLevel retrieves a post's comments that are not replies, oldest first
	ListTopLevel(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// ListReplies retrieves the direct replies of a comment, oldest first
	ListReplies(ctx context.Context, parentID uuid.UUID) ([]*entity.Comment, error)
}
