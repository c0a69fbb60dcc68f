package screens

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"
)

// WriteQueue orders storage commands. Bubble Tea runs every command on its
// own goroutine, so two saves issued back to back could otherwise reach the
// store in either order. Each command enqueued here waits for the one
// enqueued before it, which makes the last mutation the one that sticks.
//
// Every command returned by Enqueue must eventually be run; a dropped command
// blocks everything queued after it.
type WriteQueue struct {
	mu   sync.Mutex
	tail chan struct{}
}

// NewWriteQueue returns an empty queue. Controllers that touch the same keys
// should share one.
func NewWriteQueue() *WriteQueue {
	return &WriteQueue{}
}

// Enqueue tickets fn behind every previously enqueued command.
func (q *WriteQueue) Enqueue(fn func() tea.Msg) tea.Cmd {
	q.mu.Lock()
	prev := q.tail
	done := make(chan struct{})
	q.tail = done
	q.mu.Unlock()

	return func() tea.Msg {
		if prev != nil {
			<-prev
		}
		defer close(done)
		return fn()
	}
}

// Wait blocks until every command enqueued so far has finished or ctx is done.
func (q *WriteQueue) Wait(ctx context.Context) error {
	q.mu.Lock()
	tail := q.tail
	q.mu.Unlock()

	if tail == nil {
		return nil
	}
	select {
	case <-tail:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
