// Package livequery provides auto-refreshing query results. A Live
// collection runs its fetch once up front and again after every
// matching committed change, delivering fresh snapshots on a channel.
// Consumers hold snapshots, never live store references; a snapshot is
// a lookup key into the store, not a pointer.
package livequery

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thevuong/harvest/pkg/domain"
	"github.com/thevuong/harvest/pkg/eventbus"
)

// FetchFunc loads the current snapshot of the observed collection.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Live is a self-updating query result. Close must be called on
// teardown: it deregisters the bus subscriptions and closes Updates.
type Live[T any] struct {
	updates    chan []T
	kick       chan struct{}
	done       chan struct{}
	deregister []func()
	closeOnce  sync.Once
	fetch      FetchFunc[T]
	logger     *slog.Logger
}

// New starts observing. The fetch runs immediately for the initial
// snapshot and again after every event whose type is in eventTypes.
// Snapshots are coalesced: a slow consumer sees the latest state, not
// every intermediate one.
func New[T any](
	ctx context.Context,
	bus eventbus.Bus,
	eventTypes []string,
	fetch FetchFunc[T],
	logger *slog.Logger,
) *Live[T] {
	l := &Live[T]{
		updates: make(chan []T, 1),
		kick:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		fetch:   fetch,
		logger:  logger.With("component", "livequery"),
	}
	for _, eventType := range eventTypes {
		l.deregister = append(l.deregister,
			bus.Register(eventType, func(context.Context, domain.Event) { l.poke() }))
	}
	go l.run(ctx)
	return l
}

// Updates delivers collection snapshots. The channel is closed by Close.
func (l *Live[T]) Updates() <-chan []T { return l.updates }

// Close deregisters the subscriptions and closes the Updates channel.
// Safe to call more than once.
func (l *Live[T]) Close() {
	l.closeOnce.Do(func() {
		for _, deregister := range l.deregister {
			deregister()
		}
		close(l.done)
	})
}

func (l *Live[T]) poke() {
	select {
	case <-l.done:
	case l.kick <- struct{}{}:
	default: // a refresh is already pending
	}
}

func (l *Live[T]) run(ctx context.Context) {
	defer close(l.updates)
	l.refresh(ctx)
	for {
		select {
		case <-l.done:
			return
		case <-ctx.Done():
			return
		case <-l.kick:
			l.refresh(ctx)
		}
	}
}

func (l *Live[T]) refresh(ctx context.Context) {
	items, err := l.fetch(ctx)
	if err != nil {
		// absorbed: the previous snapshot stays current
		l.logger.Warn("live query refresh failed", "error", err)
		return
	}
	for {
		select {
		case l.updates <- items:
			return
		default:
			// drop the stale pending snapshot and retry
			select {
			case <-l.updates:
			default:
			}
		}
	}
}
