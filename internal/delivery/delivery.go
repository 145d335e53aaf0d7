// Package delivery holds the transports that drive the usecases.
package delivery

import "context"

// Delivery is a long-running server started by a cmd entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
