// Package ctxwatch lets a synchronous connection honor context
// cancellation at its suspension points (the transport read/write calls)
// without threading a context through the transport itself.
//
// A Watcher belongs to exactly one Conn for that Conn's entire lifetime
// (pgconn.NewConn makes one and never hands it to anything else), unlike a
// connection-pool watcher that gets checked out and back in across many
// borrowers. That one-to-one ownership is what lets Close tie the
// background goroutine's lifetime directly to the Conn's: a connection that
// never observes a single context cancellation (the common case for a
// connection used with context.Background() throughout) never spawns the
// goroutine at all, and a connection that does spawn one has it reclaimed
// the moment the Conn itself is closed, rather than leaking until the
// watchChan is garbage collected.
package ctxwatch

import (
	"context"
	"sync/atomic"
)

// Watcher watches one context at a time and invokes onCancel when it is
// done. A connection starts a Watch immediately before a blocking transport
// call and Unwatches right after; onCancel is expected to close the
// transport, which unblocks the in-flight call with an error.
type Watcher struct {
	onCancel             func()
	onUnwatchAfterCancel func()

	watchInProgress uint32
	watchChan       chan context.Context
	unwatchChan     chan struct{}
}

// New returns a Watcher. onCancel runs when a watched context is done.
// onUnwatchAfterCancel runs when Unwatch is called after onCancel already
// fired for the current watch.
func New(onCancel, onUnwatchAfterCancel func()) *Watcher {
	return &Watcher{onCancel: onCancel, onUnwatchAfterCancel: onUnwatchAfterCancel}
}

func (w *Watcher) loop() {
	for ctx := range w.watchChan {
		select {
		case <-ctx.Done():
			w.onCancel()
			<-w.watchChan
			w.onUnwatchAfterCancel()
			w.unwatchChan <- struct{}{}
		case <-w.watchChan:
			w.unwatchChan <- struct{}{}
		}
	}
}

// Watch begins watching ctx. It panics if a Watch is already in progress.
func (w *Watcher) Watch(ctx context.Context) {
	if atomic.SwapUint32(&w.watchInProgress, 1) != 0 {
		panic("ctxwatch: Watch already in progress")
	}
	if ctx.Done() == nil {
		atomic.StoreUint32(&w.watchInProgress, 0)
		return
	}
	if w.watchChan == nil {
		w.watchChan = make(chan context.Context, 1)
		w.unwatchChan = make(chan struct{}, 1)
		go w.loop()
	}
	w.watchChan <- ctx
}

// Unwatch stops watching the context passed to the last Watch call. It is
// a no-op if nothing is currently being watched.
func (w *Watcher) Unwatch() {
	if atomic.SwapUint32(&w.watchInProgress, 0) != 1 {
		return
	}
	w.watchChan <- nil
	<-w.unwatchChan
}

// Close stops the background loop goroutine, if one was ever spawned. The
// owning Conn calls this from its own Close, since a Watcher never outlives
// the single Conn it watches for. It must not be called while a Watch is in
// progress.
func (w *Watcher) Close() {
	if w.watchChan != nil {
		close(w.watchChan)
	}
}
