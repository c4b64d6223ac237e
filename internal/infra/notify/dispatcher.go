package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"estate-marketplace/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, event shared.Event) error
}

// Dispatcher queues events in memory and hands them to a Publisher from a
// fixed set of workers. Notify never blocks: a full or stopped queue drops
// the event.
type Dispatcher struct {
	publisher Publisher
	queue     chan shared.Event
	workers   int
	timeout   time.Duration
	logger    *slog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

func NewDispatcher(publisher Publisher, queueSize, workers int, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	if workers <= 0 {
		workers = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		publisher: publisher,
		queue:     make(chan shared.Event, queueSize),
		workers:   workers,
		timeout:   timeout,
		logger:    logger,
	}
}

func (d *Dispatcher) Start() {
	for range d.workers {
		d.wg.Add(1)
		go d.work()
	}
}

// Stop closes the queue and waits for the workers to drain it, or for ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.logger.Warn("notification dispatcher stopped before queue drained", "pending", len(d.queue))
		return ctx.Err()
	}
}

func (d *Dispatcher) Notify(_ context.Context, event shared.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.logger.Warn("dropping notification after shutdown", "type", event.Type, "unit_id", event.UnitID)
		return
	}
	select {
	case d.queue <- event:
	default:
		d.logger.Warn("notification queue full, dropping event", "type", event.Type, "unit_id", event.UnitID)
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for event := range d.queue {
		d.publish(event)
	}
}

func (d *Dispatcher) publish(event shared.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	if err := d.publisher.Publish(ctx, event); err != nil {
		d.logger.Warn("failed to publish notification",
			"type", event.Type,
			"unit_id", event.UnitID,
			"recipient_id", event.RecipientID,
			"error", err)
	}
}
