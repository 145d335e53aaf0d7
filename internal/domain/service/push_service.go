// Package service declares the domain services implemented by infrastructure providers.
package service

import (
	"context"
)

// MaxPushBatchSize is the largest number of tokens a single multicast may carry.
const MaxPushBatchSize = 500

// PushService defines the interface for push notification providers
type PushService interface {
	// SendBatchNotification sends one push message to up to MaxPushBatchSize device tokens.
	// Returns success count, failure count, the tokens the provider reports as unregistered, and error.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, unregisteredTokens []string, err error)
}
