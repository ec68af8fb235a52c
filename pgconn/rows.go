package pgconn

import (
	"context"

	"github.com/hlandau/pgwire/pgproto3"
	"github.com/hlandau/pgwire/pgtype"
)

// RowStream is the lazy, one-pass sequence of rows a Query produces. Next
// drives the connection's receive loop directly; no other operation may be
// issued on the owning Conn while a RowStream is open.
type RowStream struct {
	conn   *Conn
	fields []pgproto3.FieldDescription

	values     []any
	commandTag CommandTag
	err        error
	done       bool
}

func newRowStream(conn *Conn, fields []pgproto3.FieldDescription) *RowStream {
	return &RowStream{conn: conn, fields: fields}
}

// FieldDescriptions returns the column descriptions captured when the query
// started. It is stable for the lifetime of the stream.
func (r *RowStream) FieldDescriptions() []pgproto3.FieldDescription {
	return r.fields
}

// Values returns the current row's decoded column values, valid until the
// next call to Next.
func (r *RowStream) Values() []any {
	return r.values
}

// CommandTag returns the command tag reported by CommandComplete. It is only
// meaningful after Next has returned false.
func (r *RowStream) CommandTag() CommandTag {
	return r.commandTag
}

// Err returns the first error observed while iterating, if any.
func (r *RowStream) Err() error {
	return r.err
}

// Next advances to the next row, decoding its columns with the connection's
// type registry. It returns false at the end of the result set or on error;
// callers must check Err to distinguish the two.
func (r *RowStream) Next(ctx context.Context) bool {
	if r.done {
		return false
	}

	for {
		msg, err := r.conn.nextMessage(ctx)
		if err != nil {
			r.err = err
			r.finish()
			return false
		}
		if r.conn.dispatchAsync(msg) {
			continue
		}

		switch m := msg.(type) {
		case *pgproto3.ParseComplete, *pgproto3.BindComplete, *pgproto3.CloseComplete, *pgproto3.NoData:
			continue
		case *pgproto3.ParameterDescription:
			continue
		case *pgproto3.RowDescription:
			r.fields = m.Fields
			continue
		case *pgproto3.DataRow:
			row, decodeErr := r.decodeRow(m.Values)
			if decodeErr != nil {
				if r.err == nil {
					r.err = newCodecError(decodeErr)
				}
				continue
			}
			r.values = row
			return true
		case *pgproto3.CommandComplete:
			r.commandTag = CommandTag(m.CommandTag)
			continue
		case *pgproto3.EmptyQueryResponse:
			if r.err == nil {
				r.err = newProtocolError("empty query", nil)
			}
			continue
		case *pgproto3.ErrorResponse:
			if r.err == nil {
				r.err = newPgError(m)
			}
			continue
		case *pgproto3.ReadyForQuery:
			r.conn.txStatus = m.TxStatus
			r.finish()
			return false
		default:
			r.err = newProtocolError("unexpected message during query", nil)
			r.finish()
			return false
		}
	}
}

func (r *RowStream) decodeRow(raw [][]byte) ([]any, error) {
	row := make([]any, len(raw))
	for i, v := range raw {
		fd := r.fields[i]
		value, err := r.conn.registry.Deserialize(&pgtype.Field{
			DataTypeOID:  fd.DataTypeOID,
			DataTypeSize: fd.DataTypeSize,
			TypeModifier: fd.TypeModifier,
			Format:       fd.Format,
			Payload:      v,
			GetParam:     r.conn.ParameterStatus,
		})
		if err != nil {
			return nil, err
		}
		row[i] = value
	}
	return row, nil
}

func (r *RowStream) finish() {
	r.done = true
	r.conn.rowsOpen = false
}

// Close signals that the caller is no longer interested in the remaining
// rows. It drains the backend to the next ReadyForQuery so the connection
// comes back clean, without allocating decoded rows for what it drains.
func (r *RowStream) Close(ctx context.Context) error {
	for !r.done {
		r.values = nil
		if !r.Next(ctx) {
			break
		}
	}
	return r.err
}
