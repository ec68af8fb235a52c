package pgconn

import (
	"fmt"

	"github.com/hlandau/pgwire/pgproto3"
	"golang.org/x/xerrors"
)

// Notice is the keyed bag of fields the server attaches to both
// ErrorResponse and NoticeResponse. A PgError is a Notice wrapped as an
// error; a bare Notice reaches the caller only via the OnNotice callback.
type Notice struct {
	Severity         string
	SeverityV2       string
	Code             string
	Message          string
	Detail           string
	Hint             string
	Position         int32
	InternalPosition int32
	InternalQuery    string
	Where            string
	SchemaName       string
	TableName        string
	ColumnName       string
	DataTypeName     string
	ConstraintName   string
	File             string
	Line             int32
	Routine          string
}

func noticeFromFields(msg *pgproto3.ErrorResponse) *Notice {
	return &Notice{
		Severity:         msg.Severity,
		SeverityV2:       msg.SeverityV2,
		Code:             msg.Code,
		Message:          msg.Message,
		Detail:           msg.Detail,
		Hint:             msg.Hint,
		Position:         msg.Position,
		InternalPosition: msg.InternalPosition,
		InternalQuery:    msg.InternalQuery,
		Where:            msg.Where,
		SchemaName:       msg.SchemaName,
		TableName:        msg.TableName,
		ColumnName:       msg.ColumnName,
		DataTypeName:     msg.DataTypeName,
		ConstraintName:   msg.ConstraintName,
		File:             msg.File,
		Line:             msg.Line,
		Routine:          msg.Routine,
	}
}

// PgError is a Notice the server sent back as an ErrorResponse, wrapped as
// an error. It is never fatal to the connection by itself — the caller
// sees it once ReadyForQuery has been observed, and the connection is
// usable again.
type PgError struct {
	Notice
}

func (e *PgError) Error() string {
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.Code)
}

// SQLState returns the five-character SQLSTATE code.
func (e *PgError) SQLState() string {
	return e.Code
}

func newPgError(msg *pgproto3.ErrorResponse) *PgError {
	return &PgError{Notice: *noticeFromFields(msg)}
}

func noticeFromNoticeResponse(msg *pgproto3.NoticeResponse) *Notice {
	return noticeFromFields((*pgproto3.ErrorResponse)(msg))
}

// Notification is a LISTEN/NOTIFY payload delivered asynchronously,
// independent of any command the caller issued.
type Notification struct {
	PID     uint32
	Channel string
	Payload string
}

// ProtocolError reports a message sequence the state machine did not
// expect: a frame of the wrong type for the current phase, a truncated
// frame, or a field that failed to decode. It is always fatal; the
// connection transitions to closed.
type ProtocolError struct {
	msg string
	err error
}

func (e *ProtocolError) Error() string {
	if e.err == nil {
		return "pgconn: protocol error: " + e.msg
	}
	return fmt.Sprintf("pgconn: protocol error: %s: %s", e.msg, e.err)
}

func (e *ProtocolError) Unwrap() error { return e.err }

func newProtocolError(msg string, err error) *ProtocolError {
	return &ProtocolError{msg: msg, err: err}
}

// AuthError reports an authentication failure: an unsupported
// AuthenticationRequest sub-type, or the server rejecting the credentials
// sent in response to one. Always fatal.
type AuthError struct {
	msg string
	err error
}

func (e *AuthError) Error() string {
	if e.err == nil {
		return "pgconn: authentication failed: " + e.msg
	}
	return fmt.Sprintf("pgconn: authentication failed: %s: %s", e.msg, e.err)
}

func (e *AuthError) Unwrap() error { return e.err }

func newAuthError(msg string, err error) *AuthError {
	return &AuthError{msg: msg, err: err}
}

// CodecError wraps a pgtype serialization or deserialization failure —
// TypeMismatchError, LengthMismatchError, UnknownOIDError, or an
// unknown-jsonb-version/bad-inet-family error raised by a codec. It fails
// only the operation in progress; the connection recovers normally.
type CodecError struct {
	err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("pgconn: codec error: %s", e.err)
}

func (e *CodecError) Unwrap() error { return e.err }

func newCodecError(err error) *CodecError {
	if err == nil {
		return nil
	}
	return &CodecError{err: err}
}

// TransportError wraps an error returned by the underlying transport's
// Read, Write, or Close. Always fatal. SafeToRetry reports whether the
// failing call is known to have written nothing to the wire, making a
// fresh attempt on a new connection safe.
type TransportError struct {
	msg         string
	err         error
	safeToRetry bool
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pgconn: transport error: %s: %s", e.msg, e.err)
}

func (e *TransportError) Unwrap() error     { return e.err }
func (e *TransportError) SafeToRetry() bool { return e.safeToRetry }

func newTransportError(msg string, err error, safeToRetry bool) *TransportError {
	return &TransportError{msg: msg, err: err, safeToRetry: safeToRetry}
}

// SafeToRetry reports whether err is known to have occurred before any
// bytes reached the server, making the operation safe to retry on a fresh
// connection.
func SafeToRetry(err error) bool {
	var e interface{ SafeToRetry() bool }
	if xerrors.As(err, &e) {
		return e.SafeToRetry()
	}
	return false
}

// Usage-kind sentinel errors: none of these are fatal to the connection.
var (
	// ErrAlreadyEngaged is returned by Exec, ExecParams, Query, and Begin
	// when a previous Query's row stream is still open.
	ErrAlreadyEngaged = xerrors.New("pgconn: a row stream from a previous query is still open")

	// ErrNoHandshake is returned by any operation attempted before
	// Handshake has completed successfully.
	ErrNoHandshake = xerrors.New("pgconn: handshake has not completed")

	// ErrHandshakeAlreadyDone is returned by a second call to Handshake on
	// the same Conn.
	ErrHandshakeAlreadyDone = xerrors.New("pgconn: handshake already completed")

	// ErrClosed is returned by any operation attempted on a closed Conn.
	ErrClosed = xerrors.New("pgconn: connection is closed")

	// ErrWrongArgCount is returned by ExecParams/Query when the number of
	// arguments does not match the server-reported parameter count.
	ErrWrongArgCount = xerrors.New("pgconn: wrong number of arguments")

	// ErrUnsupportedAuthKind is returned during the handshake when the
	// server requests an authentication method this package does not
	// implement (anything but OK, cleartext, or MD5).
	ErrUnsupportedAuthKind = xerrors.New("pgconn: unsupported authentication method")
)
