// Package delivery defines the long-running entry points started by the fx application.
package delivery

import "context"

// Delivery is a server or consumer that blocks in Serve until it stops.
// Shutdown is driven by the fx lifecycle hooks each implementation registers.
type Delivery interface {
	Serve(ctx context.Context) error
}
