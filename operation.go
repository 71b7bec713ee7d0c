package imaging

import "sync/atomic"

// ProgressFunc receives the completed fraction of a running operation,
// monotonically increasing in [0, 1]. It is invoked synchronously between
// row passes; operations never depend on it for correctness.
type ProgressFunc func(done float64)

// operation is the embedded base of every processing operation: an optional
// progress callback plus an advisory abort flag checked between rows.
type operation struct {
	progress ProgressFunc
	abortReq atomic.Bool
}

// SetProgress installs a progress callback. Pass nil to remove it.
func (o *operation) SetProgress(fn ProgressFunc) { o.progress = fn }

// Abort requests an early stop. It is safe to call from another goroutine;
// the running operation checks the flag between rows and returns an error
// wrapping ErrOperationFailed when it honors the request.
func (o *operation) Abort() { o.abortReq.Store(true) }

func (o *operation) aborted() bool { return o.abortReq.Load() }

// resetAbort clears the abort flag at the start of a run, so one operation
// value can be reused.
func (o *operation) resetAbort() { o.abortReq.Store(false) }

func (o *operation) reportProgress(done, total int) {
	if o.progress == nil || total <= 0 {
		return
	}
	o.progress(float64(done) / float64(total))
}
