// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today, possibly gRPC later).
// Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
