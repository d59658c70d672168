package journal

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"smart-parking/internal/usecase/parking"
)

// Dispatcher decouples the manager's critical section from journal I/O.
// Publish never blocks: when the buffer is full the event is dropped and
// counted. Run drains the buffer into the Store in publish order.
type Dispatcher struct {
	store        Store
	events       chan parking.Event
	writeTimeout time.Duration
	logger       *slog.Logger

	mu      sync.RWMutex
	closed  bool
	done    chan struct{}
	dropped atomic.Uint64
	written atomic.Uint64
	failed  atomic.Uint64
}

var _ parking.EventPublisher = (*Dispatcher)(nil)

func NewDispatcher(store Store, bufferSize int, writeTimeout time.Duration, logger *slog.Logger) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		store:        store,
		events:       make(chan parking.Event, bufferSize),
		writeTimeout: writeTimeout,
		logger:       logger,
		done:         make(chan struct{}),
	}
}

func (d *Dispatcher) Publish(evt parking.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.dropped.Add(1)
		return
	}
	select {
	case d.events <- evt:
	default:
		d.dropped.Add(1)
		d.logger.Warn("journal buffer full, dropping event",
			slog.String("event", string(evt.Kind)),
			slog.String("reservation_id", evt.ReservationID),
		)
	}
}

// Run writes events until Close is called or ctx is cancelled. It must be
// started exactly once.
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case evt, ok := <-d.events:
			if !ok {
				return
			}
			d.write(ctx, evt)
		case <-ctx.Done():
			d.logger.Warn("journal stopped before drain", slog.Int("pending", len(d.events)))
			return
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, evt parking.Event) {
	wctx := ctx
	if d.writeTimeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(ctx, d.writeTimeout)
		defer cancel()
	}
	if err := d.store.Append(wctx, evt); err != nil {
		d.failed.Add(1)
		d.logger.Error("failed to journal parking event",
			slog.String("event", string(evt.Kind)),
			slog.String("error", err.Error()),
		)
		return
	}
	d.written.Add(1)
}

// Close stops accepting events and waits for Run to drain what is buffered.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.events)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type Stats struct {
	Written uint64
	Failed  uint64
	Dropped uint64
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Written: d.written.Load(),
		Failed:  d.failed.Load(),
		Dropped: d.dropped.Load(),
	}
}
