package pgtype

import (
	"encoding/binary"
	"time"
)

// microsecFromUnixEpochToY2K is the offset, in microseconds, between the
// Unix epoch and the PostgreSQL epoch (2000-01-01 00:00:00 UTC) that the
// timestamp and timestamptz wire formats are relative to.
const microsecFromUnixEpochToY2K = 946684800 * 1000000

type timestampCodec struct{ oid uint32 }

func (c timestampCodec) Serialize(value any, field *Field) ([]byte, error) {
	t, ok := value.(time.Time)
	if !ok {
		return nil, &TypeMismatchError{OID: c.oid, Value: value}
	}
	microsecSinceUnixEpoch := t.Unix()*1000000 + int64(t.Nanosecond())/1000
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(microsecSinceUnixEpoch-microsecFromUnixEpochToY2K))
	return buf, nil
}

func (c timestampCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 8 {
		return nil, &LengthMismatchError{OID: c.oid, Expected: 8, Actual: len(field.Payload)}
	}
	microsecSinceY2K := int64(binary.BigEndian.Uint64(field.Payload))
	microsecSinceUnixEpoch := microsecFromUnixEpochToY2K + microsecSinceY2K
	return time.Unix(microsecSinceUnixEpoch/1000000, (microsecSinceUnixEpoch%1000000)*1000).UTC(), nil
}

func init() {
	mustRegister(TimestampOID, timestampCodec{oid: TimestampOID})
	mustRegister(TimestamptzOID, timestampCodec{oid: TimestamptzOID})
}
