// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport server started by the application
// bootstrap and stopped through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
