package pgmock

import (
	"github.com/hlandau/pgwire/pgproto3"
	"github.com/hlandau/pgwire/pgtype"
)

// MustEncodeDataRow serializes values against oids using registry (nil means
// pgtype.Default) and panics on any codec error. It exists so scripts can
// write SendMessage(pgmock.MustEncodeDataRow(nil, oids, values)) instead of
// hand-assembling wire bytes for every row a test wants a mocked server to
// send back.
func MustEncodeDataRow(registry *pgtype.Registry, oids []uint32, values []any) *pgproto3.DataRow {
	dr, err := EncodeDataRow(registry, oids, values)
	if err != nil {
		panic(err)
	}
	return dr
}

// EncodeDataRow serializes values against oids using registry (nil means
// pgtype.Default). A nil entry in values encodes as SQL NULL.
func EncodeDataRow(registry *pgtype.Registry, oids []uint32, values []any) (*pgproto3.DataRow, error) {
	if registry == nil {
		registry = pgtype.Default
	}
	dr := &pgproto3.DataRow{Values: make([][]byte, len(values))}
	for i, v := range values {
		if v == nil {
			continue
		}
		b, err := registry.Serialize(oids[i], v, &pgtype.Field{DataTypeOID: oids[i], Format: 1})
		if err != nil {
			return nil, err
		}
		dr.Values[i] = b
	}
	return dr, nil
}
