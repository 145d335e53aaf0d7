package repository

import (
	"context"
	"errors"
)

// ErrConcurrencyConflict is returned when the database aborted a transaction
// because of a serialization failure or deadlock. Such transactions are safe to retry.
var ErrConcurrencyConflict = errors.New("concurrent update conflict")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// A transaction that fails with ErrConcurrencyConflict is run again from the start,
	// so fn must not have side effects outside the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewCommentRepository returns a CommentRepository instance bound to the current transaction.
	NewCommentRepository() CommentRepository

	// NewPostRepository returns a PostRepository instance bound to the current transaction.
	NewPostRepository() PostRepository
}
