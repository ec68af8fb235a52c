// Package pgmock stands in for a PostgreSQL server in tests: a scripted
// sequence of Steps that expects particular frontend messages and sends back
// particular backend ones, driven over whatever io.ReadWriteCloser the test
// hands it (typically one end of a net.Pipe(), with the other end passed to
// pgconn.Connect). It is the test harness every end-to-end pgconn test in
// this repository is built on.
package pgmock

import (
	"io"
	"reflect"

	errors "golang.org/x/xerrors"

	"github.com/hlandau/pgwire/pgproto3"
)

// Backend is the server half of a mocked connection: it reads frontend
// messages and writes backend ones over a single io.ReadWriteCloser, using
// the same push-based framer the real pgconn client drives in the other
// direction.
type Backend struct {
	rw     io.ReadWriteCloser
	framer pgproto3.Framer

	pending []pgproto3.Frame
}

// NewBackend wraps rw. rw is typically one end of a net.Pipe(); the other
// end is handed to pgconn.Connect.
func NewBackend(rw io.ReadWriteCloser) *Backend {
	return &Backend{rw: rw}
}

// ReceiveStartupMessage reads the very first message a frontend sends, which
// uniquely among wire messages carries no type byte: just a 4-byte length
// prefix followed by the protocol version and parameter pairs.
func (b *Backend) ReceiveStartupMessage() (*pgproto3.StartupMessage, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(b.rw, lenBuf[:]); err != nil {
		return nil, err
	}
	msgLen := int(lenBuf[0])<<24 | int(lenBuf[1])<<16 | int(lenBuf[2])<<8 | int(lenBuf[3])
	if msgLen < 4 {
		return nil, errors.Errorf("invalid startup message length: %d", msgLen)
	}
	body := make([]byte, msgLen-4)
	if _, err := io.ReadFull(b.rw, body); err != nil {
		return nil, err
	}
	msg := &pgproto3.StartupMessage{}
	if err := msg.Decode(body); err != nil {
		return nil, err
	}
	return msg, nil
}

// Receive reads and decodes the next frontend message.
func (b *Backend) Receive() (pgproto3.FrontendMessage, error) {
	for len(b.pending) == 0 {
		buf := make([]byte, 4096)
		n, err := b.rw.Read(buf)
		if n == 0 && err != nil {
			return nil, err
		}
		frames, ferr := b.framer.Feed(buf[:n])
		if ferr != nil {
			return nil, ferr
		}
		b.pending = frames
		if err != nil && len(b.pending) == 0 {
			return nil, err
		}
	}
	frame := b.pending[0]
	b.pending = b.pending[1:]
	return pgproto3.DecodeFrontend(frame)
}

// Send encodes and writes msg.
func (b *Backend) Send(msg pgproto3.BackendMessage) error {
	buf := msg.Encode(nil)
	_, err := b.rw.Write(buf)
	return err
}

// Controller drives a Backend for the duration of one mocked connection.
type Controller interface {
	Serve(backend *Backend) error
}

// Step is one action in a Script: expect an incoming message, or send an
// outgoing one.
type Step interface {
	Step(*Backend) error
}

// Script is an ordered sequence of Steps. It implements Controller so it can
// drive a Backend directly.
type Script struct {
	Steps []Step
}

func (s *Script) Run(backend *Backend) error {
	return s.Serve(backend)
}

func (s *Script) Serve(backend *Backend) error {
	for i, step := range s.Steps {
		if err := step.Step(backend); err != nil {
			return errors.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

type expectMessageStep struct {
	want pgproto3.FrontendMessage
	any  bool
}

func (e *expectMessageStep) Step(backend *Backend) error {
	msg, err := backend.Receive()
	if err != nil {
		return err
	}

	if e.any && reflect.TypeOf(msg) == reflect.TypeOf(e.want) {
		return nil
	}

	if !reflect.DeepEqual(msg, e.want) {
		return errors.Errorf("msg => %#v, want => %#v", msg, e.want)
	}

	return nil
}

type expectStartupMessageStep struct {
	want *pgproto3.StartupMessage
	any  bool
}

func (e *expectStartupMessageStep) Step(backend *Backend) error {
	msg, err := backend.ReceiveStartupMessage()
	if err != nil {
		return err
	}

	if e.any {
		return nil
	}

	if !reflect.DeepEqual(msg, e.want) {
		return errors.Errorf("msg => %#v, want => %#v", msg, e.want)
	}

	return nil
}

// ExpectMessage requires the next frontend message to equal want exactly.
func ExpectMessage(want pgproto3.FrontendMessage) Step {
	return expectMessage(want, false)
}

// ExpectAnyMessage requires only that the next frontend message has the same
// type as want; its fields are not compared. Useful for Parse/Bind steps
// whose exact bytes (a serialized parameter, say) the test doesn't want to
// hand-encode.
func ExpectAnyMessage(want pgproto3.FrontendMessage) Step {
	return expectMessage(want, true)
}

func expectMessage(want pgproto3.FrontendMessage, any bool) Step {
	if want, ok := want.(*pgproto3.StartupMessage); ok {
		return &expectStartupMessageStep{want: want, any: any}
	}
	return &expectMessageStep{want: want, any: any}
}

type sendMessageStep struct {
	msg pgproto3.BackendMessage
}

func (e *sendMessageStep) Step(backend *Backend) error {
	return backend.Send(e.msg)
}

// SendMessage queues msg to be written to the frontend.
func SendMessage(msg pgproto3.BackendMessage) Step {
	return &sendMessageStep{msg: msg}
}

type waitForCloseStep struct{}

func (e *waitForCloseStep) Step(backend *Backend) error {
	for {
		msg, err := backend.Receive()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if _, ok := msg.(*pgproto3.Terminate); ok {
			return nil
		}
	}
}

// WaitForClose reads and discards frontend messages until Terminate or EOF.
func WaitForClose() Step {
	return &waitForCloseStep{}
}

// AcceptUnauthenticatedConnRequestSteps is the common opening of a successful
// handshake: accept any startup message, report auth as already satisfied,
// hand back a backend key, and go straight to ReadyForQuery.
func AcceptUnauthenticatedConnRequestSteps() []Step {
	return []Step{
		ExpectAnyMessage(&pgproto3.StartupMessage{ProtocolVersion: pgproto3.ProtocolVersionNumber, Parameters: map[string]string{}}),
		SendMessage(&pgproto3.AuthenticationRequest{Type: pgproto3.AuthTypeOk}),
		SendMessage(&pgproto3.BackendKeyData{ProcessID: 0, SecretKey: 0}),
		SendMessage(&pgproto3.ReadyForQuery{TxStatus: 'I'}),
	}
}
