// Package domain holds the contracts shared by every domain package.
package domain

// Event is implemented by every domain event emitted after a committed
// store mutation. Type returns a stable identifier used for handler
// registration on the event bus.
type Event interface {
	Type() string
}
