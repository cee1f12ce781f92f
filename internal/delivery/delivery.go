// Package delivery defines the contract every transport implementation fulfills.
package delivery

import "context"

// Delivery is a serving transport (HTTP today) started by the application
// entry point.
type Delivery interface {
	// Serve blocks, serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
