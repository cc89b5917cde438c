package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"
)

const (
	defaultWorkers = 8
	channelBuffer  = 64
)

type task struct {
	ctx  context.Context
	fn   func(context.Context) error
	done chan error
}

// Dispatcher routes work to a fixed set of workers using consistent hashing
// on a key, guaranteeing that all tasks sharing a key run sequentially.
// Settlement uses the billed member's id as the key, so two concurrent
// orders on the same tab can never interleave between settlement steps.
type Dispatcher struct {
	workers []chan task
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan task, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan task, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Do runs fn on the worker owning key and waits for its result. Returns the
// caller's context error if it is cancelled before the task is picked up or
// finished.
func (d *Dispatcher) Do(ctx context.Context, key string, fn func(context.Context) error) error {
	t := task{ctx: ctx, fn: fn, done: make(chan error, 1)}

	select {
	case d.workers[d.shardIndex(key)] <- t:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan task) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-ch:
			if !ok {
				return
			}
			err := t.fn(t.ctx)
			if err != nil {
				d.log.Error().Err(err).Int("worker_id", id).Msg("settlement task failed")
			}
			t.done <- err
		}
	}
}
