package pgtype

import "encoding/binary"

// Interval is the value of a PostgreSQL interval column: a duration
// expressed as the triple (microseconds, days, months) PostgreSQL keeps on
// the wire, rather than folded into a single duration. Folding days and
// months into microseconds requires assuming a day and month length, which
// this package does not do.
type Interval struct {
	Microseconds int64
	Days         int32
	Months       int32
}

type intervalCodec struct{}

func (intervalCodec) Serialize(value any, field *Field) ([]byte, error) {
	v, ok := value.(Interval)
	if !ok {
		return nil, &TypeMismatchError{OID: IntervalOID, Value: value}
	}
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[:8], uint64(v.Microseconds))
	binary.BigEndian.PutUint32(buf[8:12], uint32(v.Days))
	binary.BigEndian.PutUint32(buf[12:], uint32(v.Months))
	return buf, nil
}

func (intervalCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 16 {
		return nil, &LengthMismatchError{OID: IntervalOID, Expected: 16, Actual: len(field.Payload)}
	}
	return Interval{
		Microseconds: int64(binary.BigEndian.Uint64(field.Payload[:8])),
		Days:         int32(binary.BigEndian.Uint32(field.Payload[8:12])),
		Months:       int32(binary.BigEndian.Uint32(field.Payload[12:])),
	}, nil
}

func init() {
	mustRegister(IntervalOID, intervalCodec{})
}
