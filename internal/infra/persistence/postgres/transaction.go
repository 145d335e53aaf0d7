// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultTxMaxAttempts = 3
	defaultTxBaseBackoff = 20 * time.Millisecond
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db          *gorm.DB
	logger      *slog.Logger
	maxAttempts int
	baseBackoff time.Duration
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewCommentRepository creates a comment repository bound to the transaction.
// Reads through it lock the rows they return until the transaction ends.
func (f *gormRepositoryFactory) NewCommentRepository() repository.CommentRepository {
	return newTxCommentRepository(f.tx)
}

// NewPostRepository creates a post repository bound to the transaction.
func (f *gormRepositoryFactory) NewPostRepository() repository.PostRepository {
	return NewPostRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, logger *slog.Logger) repository.TransactionManager {
	return &gormTransactionManager{
		db:          db,
		logger:      logger,
		maxAttempts: defaultTxMaxAttempts,
		baseBackoff: defaultTxBaseBackoff,
	}
}

// Execute runs the given function within a single database transaction.
// Serialization failures and deadlocks restart the whole transaction with
// exponential backoff, up to maxAttempts; running out of attempts yields
// ErrTransactionFailed wrapping the last conflict.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var err error
	for attempt := 1; attempt <= tm.maxAttempts; attempt++ {
		err = tm.executeOnce(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}

		if attempt == tm.maxAttempts {
			break
		}

		backoff := tm.baseBackoff << (attempt - 1)
		if tm.logger != nil {
			tm.logger.WarnContext(ctx, "Retrying transaction after conflict",
				slog.Int("attempt", attempt), slog.Duration("backoff", backoff), slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "transaction retry aborted")
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("%w: gave up after %d attempts: %w", domainerrors.ErrTransactionFailed, tm.maxAttempts, err)
}

func isRetryable(err error) bool {
	return errors.Is(err, repository.ErrConcurrencyConflict) || isSerializationFailure(err)
}

func (tm *gormTransactionManager) executeOnce(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back if the callback panics, then re-panic for the caller's recovery.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the business error; the rollback error is only context.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return wrapDBError(err, "failed to commit transaction")
	}

	return nil
}
