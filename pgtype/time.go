package pgtype

import (
	"encoding/binary"
	"time"
)

// TimeOfDay is the value of a PostgreSQL time column: microseconds since
// midnight, with no associated calendar date.
type TimeOfDay struct {
	Microseconds int64
}

// TimeTZ is the value of a PostgreSQL timetz column: a TimeOfDay plus the
// UTC offset, in seconds, it was recorded in.
type TimeTZ struct {
	Microseconds  int64
	OffsetSeconds int32
}

type timeCodec struct{}

func (timeCodec) Serialize(value any, field *Field) ([]byte, error) {
	us, ok := microsecondsOf(value)
	if !ok {
		return nil, &TypeMismatchError{OID: TimeOID, Value: value}
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(us))
	return buf, nil
}

func (timeCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 8 {
		return nil, &LengthMismatchError{OID: TimeOID, Expected: 8, Actual: len(field.Payload)}
	}
	return TimeOfDay{Microseconds: int64(binary.BigEndian.Uint64(field.Payload))}, nil
}

type timetzCodec struct{}

func (timetzCodec) Serialize(value any, field *Field) ([]byte, error) {
	v, ok := value.(TimeTZ)
	if !ok {
		return nil, &TypeMismatchError{OID: TimetzOID, Value: value}
	}
	buf := make([]byte, 12)
	binary.BigEndian.PutUint64(buf[:8], uint64(v.Microseconds))
	binary.BigEndian.PutUint32(buf[8:], uint32(v.OffsetSeconds))
	return buf, nil
}

func (timetzCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 12 {
		return nil, &LengthMismatchError{OID: TimetzOID, Expected: 12, Actual: len(field.Payload)}
	}
	return TimeTZ{
		Microseconds:  int64(binary.BigEndian.Uint64(field.Payload[:8])),
		OffsetSeconds: int32(binary.BigEndian.Uint32(field.Payload[8:])),
	}, nil
}

func microsecondsOf(value any) (int64, bool) {
	switch v := value.(type) {
	case TimeOfDay:
		return v.Microseconds, true
	case time.Duration:
		return v.Microseconds(), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

func init() {
	mustRegister(TimeOID, timeCodec{})
	mustRegister(TimetzOID, timetzCodec{})
}
