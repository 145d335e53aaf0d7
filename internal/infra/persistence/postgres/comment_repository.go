package postgres

import (
	"context"
	"strings"
	"time"

	"swirl/internal/domain/entity"
	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/repository"
	"swirl/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deleteCommentTreeSQL removes a comment and every transitive reply in one statement.
const deleteCommentTreeSQL = `
WITH RECURSIVE subtree AS (
	SELECT id FROM comments WHERE id = ?
	UNION ALL
	SELECT c.id FROM comments c JOIN subtree s ON c.parent_id = s.id
)
DELETE FROM comments WHERE id IN (SELECT id FROM subtree)`

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
	// lockRows takes row locks on reads; set for transaction-bound instances.
	lockRows bool
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func newTxCommentRepository(tx *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: tx, lockRows: true}
}

// CreateComment persists a new comment.
func (repo *commentRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return missingReference(err, comment)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCommentCreationFailed.WrapMessage("missing required comment information")
		}

		return wrapDBError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// missingReference decides which referenced row vanished.
func missingReference(err error, comment *entity.Comment) error {
	constraint := violatedConstraint(err)
	switch {
	case strings.Contains(constraint, "parent"):
		return repository.ErrCommentNotFound
	case strings.Contains(constraint, "post"):
		return repository.ErrPostNotFound
	case comment.ParentID != nil:
		return repository.ErrCommentNotFound
	default:
		return repository.ErrPostNotFound
	}
}

// FindCommentByID retrieves a comment by its unique ID.
func (repo *commentRepository) FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel

	query := repo.db.WithContext(ctx).Where("id = ?", id)
	if repo.lockRows {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	if err := query.First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, wrapDBError(err, "failed to find comment by ID")
	}

	return toCommentDomain(&commentM), nil
}

// UpdateCommentContent writes the comment's content and updated_at.
func (repo *commentRepository) UpdateCommentContent(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		UpdateColumns(map[string]any{
			"content":    comment.Content,
			"updated_at": comment.UpdatedAt,
		})
	if result.Error != nil {
		return wrapDBError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// AdjustReplyCount applies delta to reply_count as a storage-side expression.
func (repo *commentRepository) AdjustReplyCount(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ? AND reply_count + ? >= 0", id, delta).
		UpdateColumns(map[string]any{
			"reply_count": gorm.Expr("reply_count + ?", delta),
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrNegativeReplyCount
		}

		return wrapDBError(result.Error, "failed to adjust reply count")
	}

	if result.RowsAffected == 0 {
		var exists int64
		if err := repo.db.WithContext(ctx).Model(&model.CommentModel{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return wrapDBError(err, "failed to check comment existence")
		}
		if exists == 0 {
			return repository.ErrCommentNotFound
		}

		return repository.ErrNegativeReplyCount
	}

	return nil
}

// DeleteCommentTree removes the comment and every transitive descendant.
func (repo *commentRepository) DeleteCommentTree(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Exec(deleteCommentTreeSQL, id)
	if result.Error != nil {
		return 0, wrapDBError(result.Error, "failed to delete comment tree")
	}

	return result.RowsAffected, nil
}

// FindTopLevelByPost lists a post's comments that have no parent, oldest first.
func (repo *commentRepository) FindTopLevelByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("post_id = ? AND parent_id IS NULL", postID))
}

// FindRepliesByParent lists the direct replies of a comment, oldest first.
func (repo *commentRepository) FindRepliesByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Comment, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("parent_id = ?", parentID))
}

func (repo *commentRepository) find(_ context.Context, scope *gorm.DB) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := scope.Order("created_at ASC").Order("id ASC").Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// --- Mapper Functions ---

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:         data.ID,
		PostID:     data.PostID,
		AuthorID:   data.AuthorID,
		ParentID:   data.ParentID,
		Content:    data.Content,
		ReplyCount: data.ReplyCount,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:         data.ID,
		PostID:     data.PostID,
		AuthorID:   data.AuthorID,
		ParentID:   data.ParentID,
		Content:    data.Content,
		ReplyCount: data.ReplyCount,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
