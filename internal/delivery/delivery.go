// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a long-running entry point into the application, such as an
// HTTP server. Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
