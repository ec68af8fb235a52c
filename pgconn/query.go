package pgconn

import (
	"context"

	"github.com/hlandau/pgwire/pgproto3"
	"github.com/hlandau/pgwire/pgtype"
)

// Exec runs sql via the simple query protocol: no parameter binding, text
// results discarded, a single captured command tag. sql may contain more
// than one statement, but only one CommandComplete is tolerated.
func (c *Conn) Exec(ctx context.Context, sql string) (CommandTag, error) {
	if err := c.checkUsable(); err != nil {
		return nil, err
	}

	c.wbuf.Send(&pgproto3.Query{String: sql})
	if err := c.flush(ctx); err != nil {
		return nil, err
	}

	var tag CommandTag
	var tagSet bool
	var resultErr error

	for {
		msg, err := c.nextMessage(ctx)
		if err != nil {
			return nil, err
		}
		if c.dispatchAsync(msg) {
			continue
		}

		switch m := msg.(type) {
		case *pgproto3.RowDescription, *pgproto3.DataRow, *pgproto3.NoData, *pgproto3.CopyOutResponse:
			// simple exec discards any rows a query-shaped statement produces,
			// including a COPY ... TO STDOUT result; it never streams CopyData.
		case *pgproto3.CommandComplete:
			if tagSet && resultErr == nil {
				resultErr = newProtocolError("more than one command tag from a single Exec", nil)
			}
			tag = CommandTag(m.CommandTag)
			tagSet = true
		case *pgproto3.EmptyQueryResponse:
			if resultErr == nil {
				resultErr = newProtocolError("empty query", nil)
			}
		case *pgproto3.ErrorResponse:
			if resultErr == nil {
				resultErr = newPgError(m)
			}
		case *pgproto3.ReadyForQuery:
			c.txStatus = m.TxStatus
			return tag, resultErr
		default:
			c.closed = true
			return nil, newProtocolError("unexpected message during simple query", nil)
		}
	}
}

// ExecParams runs sql through the extended-query sequence with args bound as
// binary parameters, discarding any rows and returning only the command tag.
func (c *Conn) ExecParams(ctx context.Context, sql string, args []any) (CommandTag, error) {
	rows, err := c.extendedQuery(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	for rows.Next(ctx) {
	}
	return rows.CommandTag(), rows.Err()
}

// Query runs sql through the extended-query sequence with args bound as
// binary parameters and returns a RowStream the caller drives with Next.
// No other operation may be issued on the Conn until the stream is
// exhausted or explicitly closed.
func (c *Conn) Query(ctx context.Context, sql string, args []any) (*RowStream, error) {
	return c.extendedQuery(ctx, sql, args)
}

// extendedQuery drives steps 1-9 of the extended-query sequence (§4.2) and
// hands back a RowStream primed with whatever field description the
// Describe('S')/Describe('P') exchange revealed.
func (c *Conn) extendedQuery(ctx context.Context, sql string, args []any) (*RowStream, error) {
	if err := c.checkUsable(); err != nil {
		return nil, err
	}

	c.wbuf.Send(&pgproto3.Parse{Name: "", Query: sql})
	c.wbuf.Send(&pgproto3.Describe{ObjectType: 'S', Name: ""})
	c.wbuf.Send(&pgproto3.Flush{})
	if err := c.flush(ctx); err != nil {
		return nil, err
	}

	if err := c.awaitParseComplete(ctx); err != nil {
		return nil, c.failExtended(ctx, err)
	}
	paramOIDs, err := c.awaitParameterDescription(ctx)
	if err != nil {
		return nil, c.failExtended(ctx, err)
	}
	fields, err := c.awaitRowDescriptionOrNoData(ctx)
	if err != nil {
		return nil, c.failExtended(ctx, err)
	}

	if len(paramOIDs) != len(args) {
		return nil, c.failExtended(ctx, ErrWrongArgCount)
	}

	params := make([][]byte, len(args))
	for i, arg := range args {
		b, serr := c.registry.Serialize(paramOIDs[i], arg, &pgtype.Field{
			DataTypeOID: paramOIDs[i],
			Format:      1,
			GetParam:    c.ParameterStatus,
		})
		if serr != nil {
			return nil, c.failExtended(ctx, newCodecError(serr))
		}
		params[i] = b
	}

	c.wbuf.Send(&pgproto3.Bind{
		DestinationPortal:    "",
		PreparedStatement:    "",
		ParameterFormatCodes: allBinary(len(params)),
		Parameters:           params,
		ResultFormatCodes:    allBinary(len(fields)),
	})
	c.wbuf.Send(&pgproto3.Describe{ObjectType: 'P', Name: ""})
	c.wbuf.Send(&pgproto3.Execute{Portal: "", MaxRows: 0})
	c.wbuf.Send(&pgproto3.Close{ObjectType: 'S', Name: ""})
	c.wbuf.Send(&pgproto3.Sync{})
	if err := c.flush(ctx); err != nil {
		return nil, err
	}

	c.rowsOpen = true
	return newRowStream(c, fields), nil
}

// failExtended resyncs the connection (sending Sync and draining to the next
// ReadyForQuery) after a mid-sequence failure, then returns err — unless the
// resync itself hits a fatal error, in which case that supersedes err.
func (c *Conn) failExtended(ctx context.Context, err error) error {
	if rerr := c.resync(ctx); rerr != nil {
		return rerr
	}
	return err
}

// resync sends Sync and discards everything up to and including the next
// ReadyForQuery, recording the transaction status it reports.
func (c *Conn) resync(ctx context.Context) error {
	c.wbuf.Send(&pgproto3.Sync{})
	if err := c.flush(ctx); err != nil {
		return err
	}
	for {
		msg, err := c.nextMessage(ctx)
		if err != nil {
			return err
		}
		if c.dispatchAsync(msg) {
			continue
		}
		if rfq, ok := msg.(*pgproto3.ReadyForQuery); ok {
			c.txStatus = rfq.TxStatus
			return nil
		}
	}
}

func (c *Conn) awaitParseComplete(ctx context.Context) error {
	for {
		msg, err := c.nextMessage(ctx)
		if err != nil {
			return err
		}
		if c.dispatchAsync(msg) {
			continue
		}
		switch m := msg.(type) {
		case *pgproto3.ParseComplete:
			return nil
		case *pgproto3.ErrorResponse:
			return newPgError(m)
		default:
			return newProtocolError("unexpected message awaiting ParseComplete", nil)
		}
	}
}

func (c *Conn) awaitParameterDescription(ctx context.Context) ([]uint32, error) {
	for {
		msg, err := c.nextMessage(ctx)
		if err != nil {
			return nil, err
		}
		if c.dispatchAsync(msg) {
			continue
		}
		switch m := msg.(type) {
		case *pgproto3.ParameterDescription:
			return m.ParameterOIDs, nil
		case *pgproto3.ErrorResponse:
			return nil, newPgError(m)
		default:
			return nil, newProtocolError("unexpected message awaiting ParameterDescription", nil)
		}
	}
}

func (c *Conn) awaitRowDescriptionOrNoData(ctx context.Context) ([]pgproto3.FieldDescription, error) {
	for {
		msg, err := c.nextMessage(ctx)
		if err != nil {
			return nil, err
		}
		if c.dispatchAsync(msg) {
			continue
		}
		switch m := msg.(type) {
		case *pgproto3.NoData:
			return nil, nil
		case *pgproto3.RowDescription:
			return m.Fields, nil
		case *pgproto3.ErrorResponse:
			return nil, newPgError(m)
		default:
			return nil, newProtocolError("unexpected message awaiting RowDescription", nil)
		}
	}
}

func allBinary(n int) []int16 {
	codes := make([]int16, n)
	for i := range codes {
		codes[i] = 1
	}
	return codes
}

// Begin issues BEGIN and returns a transaction handle. Only one transaction
// handle may be live on a Conn at a time.
func (c *Conn) Begin(ctx context.Context) (*Tx, error) {
	if c.tx != nil {
		return nil, ErrAlreadyEngaged
	}
	if _, err := c.Exec(ctx, "BEGIN"); err != nil {
		return nil, err
	}
	tx := &Tx{conn: c}
	c.tx = tx
	return tx, nil
}
