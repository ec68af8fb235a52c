package pgproto3

import (
	"io"

	"github.com/hlandau/pgwire/internal/pgio"
)

// WriteBuffer is the outbound half of the frame codec: a grow-on-demand
// contiguous buffer that frontend messages are appended to before being
// flushed to the transport in one write. It implements the reserve/fill/commit
// pattern described for the outbound encoder: beginMessage reserves the type
// byte and length prefix, callers append the body directly to the buffer, and
// finishMessage patches the length back in.
type WriteBuffer struct {
	buf []byte
}

// Reset discards any committed bytes without writing them anywhere.
func (w *WriteBuffer) Reset() {
	w.buf = w.buf[:0]
}

// Len returns the number of committed, unflushed bytes.
func (w *WriteBuffer) Len() int {
	return len(w.buf)
}

// Bytes returns the committed bytes. The returned slice is only valid until
// the next call to Reset or Flush.
func (w *WriteBuffer) Bytes() []byte {
	return w.buf
}

// Send appends the wire encoding of msg to the buffer. The message is not
// guaranteed to reach the transport until Flush is called.
func (w *WriteBuffer) Send(msg FrontendMessage) {
	w.buf = msg.Encode(w.buf)
}

// Flush writes the committed bytes to dst and resets the buffer.
func (w *WriteBuffer) Flush(dst io.Writer) error {
	if len(w.buf) == 0 {
		return nil
	}

	n, err := dst.Write(w.buf)
	const maxRetainedCap = 4096
	if cap(w.buf) > maxRetainedCap {
		w.buf = make([]byte, 0, maxRetainedCap)
	} else {
		w.buf = w.buf[:0]
	}

	if err != nil {
		return &writeError{err: err, safeToRetry: n == 0}
	}
	return nil
}

type writeError struct {
	err         error
	safeToRetry bool
}

func (e *writeError) Error() string {
	return "write failed: " + e.err.Error()
}

// SafeToRetry reports whether no bytes of the failed write reached the
// transport, meaning the write as a whole may be retried without resending a
// partial message.
func (e *writeError) SafeToRetry() bool {
	return e.safeToRetry
}

func (e *writeError) Unwrap() error {
	return e.err
}

// beginMessage reserves the 1-byte type and 4-byte length prefix for a
// message of type typ, returning the grown buffer and the offset of the
// length prefix (for finishMessage to patch in).
func beginMessage(buf []byte, typ byte) ([]byte, int) {
	buf = append(buf, typ)
	sp := len(buf)
	buf = pgio.AppendInt32(buf, -1)
	return buf, sp
}

// finishMessage patches the length prefix reserved at sp (by beginMessage)
// with the actual length of everything written since, and returns buf.
func finishMessage(buf []byte, sp int) []byte {
	pgio.SetInt32(buf[sp:], int32(len(buf)-sp))
	return buf
}
