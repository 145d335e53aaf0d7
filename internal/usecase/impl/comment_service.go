package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "swirl/internal/delivery/context"
	"swirl/internal/domain/entity"
	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/repository"
	"swirl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	notifier    usecase.NotificationUsecase
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	Notifier    usecase.NotificationUsecase
	Logger      *slog.Logger
}

// NewCommentService creates a new comment thread service
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		postRepo:    params.PostRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateComment adds a top-level comment to a post and notifies the post author.
func (srv *commentService) CreateComment(ctx context.Context, postID, authorID uuid.UUID, content string) (*entity.Comment, error) {
	content, err := validateCommentInput(authorID, content)
	if err != nil {
		return nil, err
	}

	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	now := time.Now()
	comment := &entity.Comment{
		ID:        uuid.New(),
		PostID:    post.ID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.commentRepo.CreateComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
		}
		srv.log(ctx).Error("Failed to create comment", slog.Any("error", err), slog.Any("post_id", postID))

		return nil, errors.Wrap(domainerrors.ErrCommentCreationFailed, err.Error())
	}

	srv.notify(ctx, &usecase.NotifyRequest{
		RecipientID: post.AuthorID,
		ActorID:     authorID,
		Action:      entity.ActionComment,
		Target:      entity.PostTarget{PostID: post.ID},
	})

	return comment, nil
}

// CreateReply adds a reply under parentID. The insert and the parent's counter
// increment commit together.
func (srv *commentService) CreateReply(ctx context.Context, parentID, authorID uuid.UUID, content string) (*entity.Comment, error) {
	content, err := validateCommentInput(authorID, content)
	if err != nil {
		return nil, err
	}

	var (
		reply  *entity.Comment
		parent *entity.Comment
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.NewCommentRepository()

		// 1. The parent must exist; the reply lives on the parent's post.
		found, err := commentRepo.FindCommentByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "parent comment not found")
			}

			return errors.Wrap(err, "failed to find parent comment")
		}

		// 2. Insert the reply
		now := time.Now()
		candidate := &entity.Comment{
			ID:        uuid.New(),
			PostID:    found.PostID,
			AuthorID:  authorID,
			ParentID:  &found.ID,
			Content:   content,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := commentRepo.CreateComment(ctx, candidate); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "parent comment not found")
			}

			return errors.Wrap(err, "failed to create reply")
		}

		// 3. Bump the parent's counter at the storage layer
		if err := commentRepo.AdjustReplyCount(ctx, found.ID, 1); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "parent comment not found")
			}

			return errors.Wrap(err, "failed to increment reply count")
		}

		reply, parent = candidate, found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create reply", slog.Any("error", err), slog.Any("parent_id", parentID))

		return nil, errors.Wrap(err, "failed to create reply")
	}

	srv.log(ctx).Info("Reply created", slog.Any("comment_id", reply.ID), slog.Any("parent_id", parent.ID))

	srv.notify(ctx, &usecase.NotifyRequest{
		RecipientID: parent.AuthorID,
		ActorID:     authorID,
		Action:      entity.ActionReply,
		Target:      entity.CommentTarget{CommentID: reply.ID},
	})

	return reply, nil
}

// GetComment retrieves a single comment
func (srv *commentService) GetComment(ctx context.Context, commentID uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return comment, nil
}

// UpdateComment replaces the content of one of the requester's comments.
// The reply count and thread position never change.
func (srv *commentService) UpdateComment(ctx context.Context, commentID, requesterID uuid.UUID, content string) (*entity.Comment, error) {
	content, err := validateCommentInput(requesterID, content)
	if err != nil {
		return nil, err
	}

	var updated *entity.Comment

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.NewCommentRepository()

		comment, err := commentRepo.FindCommentByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
			}

			return errors.Wrap(err, "failed to find comment")
		}

		if comment.AuthorID != requesterID {
			return errors.Wrap(domainerrors.ErrCommentOwnershipViolation, "comment does not belong to user")
		}

		comment.Content = content
		comment.UpdatedAt = time.Now()
		if err := commentRepo.UpdateCommentContent(ctx, comment); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
			}

			return errors.Wrap(err, "failed to update comment")
		}

		updated = comment

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update comment", slog.Any("error", err), slog.Any("comment_id", commentID))

		return nil, errors.Wrap(err, "failed to update comment")
	}

	return updated, nil
}

// DeleteComment removes the comment with all of its descendants and decrements
// the immediate parent's counter when the comment was a reply.
func (srv *commentService) DeleteComment(ctx context.Context, commentID, requesterID uuid.UUID) (int64, error) {
	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.NewCommentRepository()

		// 1. Find the comment
		comment, err := commentRepo.FindCommentByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
			}

			return errors.Wrap(err, "failed to find comment")
		}

		// 2. Verify ownership
		if comment.AuthorID != requesterID {
			return errors.Wrap(domainerrors.ErrCommentOwnershipViolation, "comment does not belong to user")
		}

		// 3. Delete the subtree
		n, err := commentRepo.DeleteCommentTree(ctx, comment.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete comment tree")
		}
		if n == 0 {
			return errors.Wrap(domainerrors.ErrCommentNotFound, "comment already deleted")
		}

		// 4. Only the immediate parent loses a direct child
		if comment.ParentID != nil {
			if err := commentRepo.AdjustReplyCount(ctx, *comment.ParentID, -1); err != nil {
				return errors.Wrap(err, "failed to decrement reply count")
			}
		}

		removed = n

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete comment", slog.Any("error", err), slog.Any("comment_id", commentID))

		return 0, errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("comment_id", commentID), slog.Int64("removed", removed))

	return removed, nil
}

// ListTopLevel retrieves a post's comments that are not replies, oldest first
func (srv *commentService) ListTopLevel(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.FindTopLevelByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// ListReplies retrieves the direct replies of a comment, oldest first
func (srv *commentService) ListReplies(ctx context.Context, parentID uuid.UUID) ([]*entity.Comment, error) {
	if _, err := srv.commentRepo.FindCommentByID(ctx, parentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	replies, err := srv.commentRepo.FindRepliesByParent(ctx, parentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list replies")
	}

	return replies, nil
}

func (srv *commentService) notify(ctx context.Context, req *usecase.NotifyRequest) {
	if _, err := srv.notifier.Notify(ctx, req); err != nil {
		srv.log(ctx).Warn("Failed to notify", slog.Any("error", err), slog.String("action", string(req.Action)))
	}
}

func validateCommentInput(authorID uuid.UUID, content string) (string, error) {
	if authorID == uuid.Nil {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "author is required")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "content must not be empty")
	}

	return content, nil
}
