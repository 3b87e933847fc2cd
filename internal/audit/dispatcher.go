package audit

import (
	"context"
	"sync"

	"github.com/JGuylherme/Service-POS/internal/logger"
)

const DefaultQueueSize = 100

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher journals events on a background worker. A full queue drops the
// event; auditing never blocks or fails a request.
type Dispatcher struct {
	logger *Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(l *Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	ctx := context.Background()
	for ev := range d.queue {
		if err := d.logger.Log(ctx, ev); err != nil {
			logger.ErrorLog(ctx, "audit write failed: %v", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		logger.WarnLog(context.Background(), "audit queue full, dropping %s %s event", ev.Entity, ev.Action)
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
