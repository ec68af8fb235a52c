package pgconn

import "context"

// Tx is a one-shot handle on a transaction begun with Conn.Begin: the first
// call to Commit or Rollback runs the corresponding statement and releases
// the connection's single-tx slot; later calls are no-ops.
//
// If the connection's transaction status is Failed, converting a Commit
// into a Rollback is the caller's call to make — Tx does not second-guess
// which statement it was asked to run.
type Tx struct {
	conn *Conn
	done bool
}

// Commit runs COMMIT.
func (tx *Tx) Commit(ctx context.Context) error {
	return tx.finish(ctx, "COMMIT")
}

// Rollback runs ROLLBACK.
func (tx *Tx) Rollback(ctx context.Context) error {
	return tx.finish(ctx, "ROLLBACK")
}

func (tx *Tx) finish(ctx context.Context, sql string) error {
	if tx.done {
		return nil
	}
	tx.done = true
	if tx.conn.tx == tx {
		tx.conn.tx = nil
	}
	_, err := tx.conn.Exec(ctx, sql)
	return err
}
