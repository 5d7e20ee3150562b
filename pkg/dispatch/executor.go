package dispatch

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"
)

// Executor runs the worker goroutines of one Dispatcher's managers. It is
// created before the managers and released after they stopped.
type Executor struct {
	mu     sync.Mutex
	wg     conc.WaitGroup
	closed bool
	done   chan struct{}
	logger *slog.Logger
}

// NewExecutor creates an executor. logger may be nil.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{done: make(chan struct{}), logger: logger}
}

// Go runs fn on a new goroutine. A panic in fn is recovered and logged when
// the executor drains.
func (e *Executor) Go(fn func()) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrExecutorClosed
	}
	e.wg.Go(fn)
	return nil
}

// Release stops accepting work and returns immediately. Done is closed once
// every running goroutine has returned.
func (e *Executor) Release() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	go func() {
		defer close(e.done)
		if r := e.wg.WaitAndRecover(); r != nil {
			e.logger.Error("worker panicked", "panic", fmt.Sprint(r.Value), "stack", string(r.Stack))
		}
	}()
}

// Done is closed after Release once all goroutines have returned.
func (e *Executor) Done() <-chan struct{} {
	return e.done
}
