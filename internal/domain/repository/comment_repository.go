package repository

import (
	"context"

	"swirl/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for comment persistence.
var (
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrNegativeReplyCount is returned when a counter update would drop below zero.
	ErrNegativeReplyCount = errors.New("reply count would become negative")
)

// CommentRepository defines the interface for comment-related database operations.
type CommentRepository interface {
	// CreateComment persists a new comment. A missing parent yields ErrCommentNotFound.
	CreateComment(ctx context.Context, comment *entity.Comment) error

	// FindCommentByID retrieves a comment by its unique ID.
	FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// UpdateCommentContent writes the comment's content and updated_at.
	// A missing comment yields ErrCommentNotFound.
	UpdateCommentContent(ctx context.Context, comment *entity.Comment) error

	// AdjustReplyCount applies delta to reply_count as a storage-side expression.
	// The update is rejected when the result would be negative.
	AdjustReplyCount(ctx context.Context, id uuid.UUID, delta int) error

	// DeleteCommentTree removes the comment and every transitive descendant and
	// returns the number of rows removed.
	DeleteCommentTree(ctx context.Context, id uuid.UUID) (int64, error)

	// FindTopLevelByPost lists a post's comments that have no parent, oldest first.
	FindTopLevelByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// FindRepliesByParent lists the direct replies of a comment, oldest first.
	FindRepliesByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Comment, error)
}
