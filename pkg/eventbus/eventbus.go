// Package eventbus defines the change-notification contract of the
// store. Services emit a domain event after every committed mutation;
// live queries and other observers register handlers per event type and
// must deregister them on teardown.
package eventbus

import (
	"context"

	"github.com/thevuong/harvest/pkg/domain"
)

// HandlerFunc handles a single emitted event.
type HandlerFunc func(ctx context.Context, event domain.Event)

// Bus is the contract for emitting and observing domain events.
//
// Register returns the deregistration function for the added handler.
// Callers own that function and must invoke it when the observer goes
// away, otherwise the subscription outlives its observer.
type Bus interface {
	Emit(ctx context.Context, event domain.Event) error
	Register(eventType string, handler HandlerFunc) (deregister func())
}
