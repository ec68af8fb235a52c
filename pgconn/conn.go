// Package pgconn implements the connection state machine: handshake,
// simple and extended query exchanges, and the transaction-status bookkeeping
// that rides on top of the frame codec in pgproto3 and the type registry in
// pgtype.
package pgconn

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"sync"

	"github.com/hlandau/pgwire/internal/ctxwatch"
	"github.com/hlandau/pgwire/log"
	"github.com/hlandau/pgwire/pgproto3"
	"github.com/hlandau/pgwire/pgtype"
)

// readBufSize is the chunk size requested from readBufPool for each Read
// call. nextFrame is the only caller, and every frame body pgproto3.Framer
// hands back from Feed is copied into its own buffer before Feed returns, so
// the buffer is safe to return to the pool the moment Feed completes.
const readBufSize = 4096

// readBufPool recycles the fixed-size buffers nextFrame reads into. Unlike a
// general-purpose allocator this package has exactly one call site and one
// buffer size, so a single size class is all a connection ever needs.
var readBufPool = sync.Pool{
	New: func() any { return make([]byte, readBufSize) },
}

// Transport is the byte stream a Conn speaks the wire protocol over. Any
// net.Conn (TCP or TLS-wrapped) satisfies it without adaptation; dialing and
// TLS negotiation are the caller's responsibility, not this package's.
type Transport = io.ReadWriteCloser

// ConnConfig carries everything Handshake needs to authenticate and start a
// session. It does not describe how to reach the server — that is the
// transport's job — only who is connecting and to what.
type ConnConfig struct {
	// Host and Port are informational only: Conn never dials. They are
	// carried here so a resolver such as the dsn package can hand back a
	// single value that also says where it came from.
	Host string
	Port uint16

	User     string
	Password string
	Database string

	// RuntimeParams are sent as additional StartupMessage parameters beyond
	// user/database (e.g. application_name, search_path).
	RuntimeParams map[string]string

	// OnNotice, if set, is called for every NoticeResponse the server sends,
	// both during and after the handshake.
	OnNotice func(*Notice)

	// OnNotification, if set, is called for every asynchronous
	// NotificationResponse (LISTEN/NOTIFY) the server sends.
	OnNotification func(*Notification)

	// Registry selects the type codec registry used to serialize parameters
	// and deserialize result columns. Nil means pgtype.Default.
	Registry *pgtype.Registry

	// Logger, if set, receives structured events for the handshake and each
	// exec/query dispatch.
	Logger log.Logger
}

// Conn is a single, synchronous connection to a PostgreSQL server. It is not
// safe for concurrent use: at most one logical operation (Exec, ExecParams,
// Query, Begin) may be outstanding at a time, matching the single-threaded
// suspension-point model the wire protocol itself assumes.
type Conn struct {
	transport Transport
	framer    pgproto3.Framer
	wbuf      pgproto3.WriteBuffer
	watcher   *ctxwatch.Watcher

	config   ConnConfig
	registry *pgtype.Registry

	pending []pgproto3.Frame

	parameterStatuses map[string]string
	txStatus          byte
	pid               uint32
	secretKey         uint32

	handshakeDone bool
	closed        bool
	rowsOpen      bool
	tx            *Tx
}

// NewConn wraps transport in a Conn. Handshake must be called before any
// other operation.
func NewConn(transport Transport, config ConnConfig) *Conn {
	registry := config.Registry
	if registry == nil {
		registry = pgtype.Default
	}
	c := &Conn{
		transport:         transport,
		config:            config,
		registry:          registry,
		parameterStatuses: make(map[string]string),
	}
	c.watcher = ctxwatch.New(
		func() { _ = transport.Close() },
		func() {},
	)
	return c
}

// Connect wraps transport in a Conn and runs Handshake against it.
func Connect(ctx context.Context, transport Transport, config ConnConfig) (*Conn, error) {
	c := NewConn(transport, config)
	if err := c.Handshake(ctx); err != nil {
		_ = c.Close(context.Background())
		return nil, err
	}
	return c, nil
}

func (c *Conn) logf(ctx context.Context, level log.LogLevel, msg string, data map[string]any) {
	if c.config.Logger == nil {
		return
	}
	c.config.Logger.Log(ctx, level, msg, data)
}

// ParameterStatus returns the last value the server reported for a run-time
// parameter (e.g. "server_version", "TimeZone"), and whether it has ever
// reported one.
func (c *Conn) ParameterStatus(name string) (string, bool) {
	v, ok := c.parameterStatuses[name]
	return v, ok
}

// TxStatus returns the transaction-status byte from the most recently
// observed ReadyForQuery: one of pgproto3.TxStatusIdle,
// TxStatusInTransaction, or TxStatusFailedTransaction.
func (c *Conn) TxStatus() byte {
	return c.txStatus
}

// Close sends a courtesy Terminate and closes the transport. It is
// idempotent.
func (c *Conn) Close(ctx context.Context) error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.wbuf.Send(&pgproto3.Terminate{})
	_ = c.flush(ctx)
	c.watcher.Close()
	return c.transport.Close()
}

func (c *Conn) checkUsable() error {
	if c.closed {
		return ErrClosed
	}
	if !c.handshakeDone {
		return ErrNoHandshake
	}
	if c.rowsOpen {
		return ErrAlreadyEngaged
	}
	return nil
}

// flush writes the write buffer's committed bytes to the transport, honoring
// ctx cancellation at the write suspension point.
func (c *Conn) flush(ctx context.Context) error {
	c.watcher.Watch(ctx)
	err := c.wbuf.Flush(c.transport)
	c.watcher.Unwatch()
	if err != nil {
		c.closed = true
		safe := false
		if sr, ok := err.(interface{ SafeToRetry() bool }); ok {
			safe = sr.SafeToRetry()
		}
		return newTransportError("write failed", err, safe)
	}
	return nil
}

// nextFrame returns the next whole frame from the transport, reading and
// feeding the framer as needed. It honors ctx cancellation at the read
// suspension point.
func (c *Conn) nextFrame(ctx context.Context) (pgproto3.Frame, error) {
	for len(c.pending) == 0 {
		buf := readBufPool.Get().([]byte)
		c.watcher.Watch(ctx)
		n, err := c.transport.Read(buf)
		c.watcher.Unwatch()
		if n == 0 && err != nil {
			readBufPool.Put(buf)
			c.closed = true
			return pgproto3.Frame{}, newTransportError("read failed", err, false)
		}
		frames, ferr := c.framer.Feed(buf[:n])
		readBufPool.Put(buf)
		if ferr != nil {
			c.closed = true
			return pgproto3.Frame{}, newProtocolError("invalid frame", ferr)
		}
		c.pending = frames
		if err != nil && len(c.pending) == 0 {
			c.closed = true
			return pgproto3.Frame{}, newTransportError("read failed", err, false)
		}
	}
	frame := c.pending[0]
	c.pending = c.pending[1:]
	return frame, nil
}

// nextMessage is nextFrame followed by DecodeBackend.
func (c *Conn) nextMessage(ctx context.Context) (pgproto3.BackendMessage, error) {
	frame, err := c.nextFrame(ctx)
	if err != nil {
		return nil, err
	}
	msg, err := pgproto3.DecodeBackend(frame)
	if err != nil {
		c.closed = true
		return nil, newProtocolError("undecodable message", err)
	}
	return msg, nil
}

// dispatchAsync handles NoticeResponse/NotificationResponse inline, wherever
// they are observed in the receive loop. It reports whether msg was one of
// those two (and has therefore already been fully handled).
func (c *Conn) dispatchAsync(msg pgproto3.BackendMessage) bool {
	switch m := msg.(type) {
	case *pgproto3.NoticeResponse:
		if c.config.OnNotice != nil {
			c.config.OnNotice(noticeFromNoticeResponse(m))
		}
		return true
	case *pgproto3.NotificationResponse:
		if c.config.OnNotification != nil {
			c.config.OnNotification(&Notification{PID: m.PID, Channel: m.Channel, Payload: m.Payload})
		}
		return true
	}
	return false
}

// Handshake performs the startup and authentication exchange. It must be
// called exactly once, before any other Conn method.
func (c *Conn) Handshake(ctx context.Context) error {
	if c.handshakeDone {
		return ErrHandshakeAlreadyDone
	}
	if c.closed {
		return ErrClosed
	}

	c.logf(ctx, log.LogLevelDebug, "starting handshake", map[string]any{"user": c.config.User, "database": c.config.Database})

	params := map[string]string{
		"user":             c.config.User,
		"database":         c.config.Database,
		"client_encoding":  "UTF8",
		"DateStyle":        "ISO, YMD",
		"application_name": "pgwire",
	}
	for k, v := range c.config.RuntimeParams {
		params[k] = v
	}

	startup := &pgproto3.StartupMessage{
		ProtocolVersion: pgproto3.ProtocolVersionNumber,
		Parameters:      params,
	}
	buf := startup.Encode(nil)
	if _, err := c.transport.Write(buf); err != nil {
		c.closed = true
		return newTransportError("write startup message failed", err, false)
	}

	if err := c.authLoop(ctx); err != nil {
		return err
	}
	if err := c.postAuthLoop(ctx); err != nil {
		return err
	}

	c.handshakeDone = true
	c.logf(ctx, log.LogLevelInfo, "handshake complete", map[string]any{"pid": c.pid, "txStatus": string(c.txStatus)})
	return nil
}

func (c *Conn) authLoop(ctx context.Context) error {
	for {
		msg, err := c.nextMessage(ctx)
		if err != nil {
			return err
		}
		if c.dispatchAsync(msg) {
			continue
		}

		switch m := msg.(type) {
		case *pgproto3.ErrorResponse:
			c.closed = true
			return newPgError(m)
		case *pgproto3.AuthenticationRequest:
			switch m.Type {
			case pgproto3.AuthTypeOk:
				return nil
			case pgproto3.AuthTypeCleartextPassword:
				c.wbuf.Send(&pgproto3.PasswordMessage{Password: c.config.Password})
				if err := c.flush(ctx); err != nil {
					return err
				}
			case pgproto3.AuthTypeMD5Password:
				c.wbuf.Send(&pgproto3.PasswordMessage{Password: md5Password(c.config.User, c.config.Password, m.Salt)})
				if err := c.flush(ctx); err != nil {
					return err
				}
			default:
				c.closed = true
				return newAuthError("unsupported authentication method", ErrUnsupportedAuthKind)
			}
		default:
			c.closed = true
			return newProtocolError("unexpected message during authentication", nil)
		}
	}
}

func (c *Conn) postAuthLoop(ctx context.Context) error {
	for {
		msg, err := c.nextMessage(ctx)
		if err != nil {
			return err
		}
		if c.dispatchAsync(msg) {
			continue
		}

		switch m := msg.(type) {
		case *pgproto3.BackendKeyData:
			c.pid = m.ProcessID
			c.secretKey = m.SecretKey
		case *pgproto3.ParameterStatus:
			c.parameterStatuses[m.Name] = m.Value
		case *pgproto3.ReadyForQuery:
			c.txStatus = m.TxStatus
			return nil
		case *pgproto3.ErrorResponse:
			c.closed = true
			return newPgError(m)
		default:
			c.closed = true
			return newProtocolError("unexpected message after authentication", nil)
		}
	}
}

// md5Password computes the PasswordMessage payload PostgreSQL's MD5 auth
// method expects: "md5" + hex(md5(hex(md5(password+user)) + salt)).
func md5Password(user, password string, salt [4]byte) string {
	inner := md5.Sum([]byte(password + user))
	innerHex := hex.EncodeToString(inner[:])
	outer := md5.Sum([]byte(innerHex + string(salt[:])))
	return "md5" + hex.EncodeToString(outer[:])
}

