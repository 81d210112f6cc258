package audit

import (
	"context"
	"sync"
	"time"
)

// AsyncOptions controls batching behavior for the async writer.
type AsyncOptions struct {
	BufferSize     int           // max events queued before falling back to sync writes
	BatchSize      int           // target events per storage batch
	BatchTimeout   time.Duration // max time a partial batch waits before flushing
	StorageTimeout time.Duration // per-batch storage timeout
}

// AsyncWriter batches events through a background worker to amortize
// storage round trips. When the buffer is full it writes synchronously
// instead of dropping events.
type AsyncWriter struct {
	batchWriter batchWriter
	eventChan   chan eventBatch
	done        chan struct{}
	wg          sync.WaitGroup
	options     AsyncOptions
}

type eventBatch struct {
	events []Event
	result chan error
}

// NewAsyncWriter creates an async writer over a bulk-capable storage.
// The returned close function must run during shutdown to flush the buffer.
func NewAsyncWriter(bw batchWriter, opts AsyncOptions) (*AsyncWriter, func(context.Context) error) {
	if bw == nil {
		panic("audit: batch writer cannot be nil")
	}

	if opts.BufferSize == 0 {
		opts.BufferSize = 1000
	}
	if opts.BatchSize == 0 {
		opts.BatchSize = 100
	}
	if opts.BatchTimeout == 0 {
		opts.BatchTimeout = 100 * time.Millisecond
	}
	if opts.StorageTimeout == 0 {
		opts.StorageTimeout = 5 * time.Second
	}

	aw := &AsyncWriter{
		batchWriter: bw,
		eventChan:   make(chan eventBatch, opts.BufferSize),
		done:        make(chan struct{}),
		options:     opts,
	}

	aw.wg.Add(1)
	go aw.worker()

	return aw, aw.Close
}

// Store queues the event and waits for its batch to be written.
func (aw *AsyncWriter) Store(ctx context.Context, event Event) error {
	select {
	case <-aw.done:
		return ErrStorageNotAvailable
	default:
	}

	result := make(chan error, 1)

	select {
	case aw.eventChan <- eventBatch{events: []Event{event}, result: result}:
		select {
		case err := <-result:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Buffer full; write synchronously rather than lose the event.
		return aw.batchWriter.StoreBatch(ctx, []Event{event})
	}
}

// Query delegates to the underlying storage when it supports reads.
func (aw *AsyncWriter) Query(ctx context.Context, criteria Criteria) ([]Event, error) {
	if storage, ok := aw.batchWriter.(Storage); ok {
		return storage.Query(ctx, criteria)
	}
	return nil, ErrStorageNotAvailable
}

func (aw *AsyncWriter) worker() {
	defer aw.wg.Done()

	batchEvents := make([]Event, 0, aw.options.BatchSize)
	pendingResults := make([]chan error, 0, aw.options.BatchSize)
	batchTimer := time.NewTicker(aw.options.BatchTimeout)
	defer batchTimer.Stop()

	// Storage runs on a detached context so a caller timing out does not
	// abort the write for the rest of the batch.
	flushBatch := func() {
		if len(batchEvents) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), aw.options.StorageTimeout)
		defer cancel()

		err := aw.batchWriter.StoreBatch(ctx, batchEvents)

		for _, resultChan := range pendingResults {
			select {
			case resultChan <- err:
			default:
			}
		}

		batchEvents = batchEvents[:0]
		pendingResults = pendingResults[:0]
	}

	for {
		select {
		case batch := <-aw.eventChan:
			batchEvents = append(batchEvents, batch.events...)
			pendingResults = append(pendingResults, batch.result)

			if len(batchEvents) >= aw.options.BatchSize {
				flushBatch()
			}

		case <-batchTimer.C:
			flushBatch()

		case <-aw.done:
			// Drain whatever is still queued before exiting. The channel
			// stays open so late Store calls fail instead of panicking.
			for {
				select {
				case batch := <-aw.eventChan:
					batchEvents = append(batchEvents, batch.events...)
					pendingResults = append(pendingResults, batch.result)
				default:
					flushBatch()
					return
				}
			}
		}
	}
}

// Close flushes the buffer and stops the worker. The context bounds the
// shutdown; if it expires, unflushed events are lost.
func (aw *AsyncWriter) Close(ctx context.Context) error {
	close(aw.done)

	doneChan := make(chan struct{})
	go func() {
		aw.wg.Wait()
		close(doneChan)
	}()

	select {
	case <-doneChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
