// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a long-running server started by the application. Serve blocks
// until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
