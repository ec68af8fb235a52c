package pgtype

import "encoding/binary"

type int2Codec struct{}

func (int2Codec) Serialize(value any, field *Field) ([]byte, error) {
	n, ok := toInt64(value)
	if !ok {
		return nil, &TypeMismatchError{OID: Int2OID, Value: value}
	}
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, uint16(int16(n)))
	return buf, nil
}

func (int2Codec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 2 {
		return nil, &LengthMismatchError{OID: Int2OID, Expected: 2, Actual: len(field.Payload)}
	}
	return int16(binary.BigEndian.Uint16(field.Payload)), nil
}

type int4Codec struct{ oid uint32 }

func (c int4Codec) Serialize(value any, field *Field) ([]byte, error) {
	n, ok := toInt64(value)
	if !ok {
		return nil, &TypeMismatchError{OID: c.oid, Value: value}
	}
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(int32(n)))
	return buf, nil
}

func (c int4Codec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 4 {
		return nil, &LengthMismatchError{OID: c.oid, Expected: 4, Actual: len(field.Payload)}
	}
	n := int32(binary.BigEndian.Uint32(field.Payload))
	if c.oid == OidOID {
		return uint32(n), nil
	}
	return n, nil
}

type int8Codec struct{}

func (int8Codec) Serialize(value any, field *Field) ([]byte, error) {
	n, ok := toInt64(value)
	if !ok {
		return nil, &TypeMismatchError{OID: Int8OID, Value: value}
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(n))
	return buf, nil
}

func (int8Codec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 8 {
		return nil, &LengthMismatchError{OID: Int8OID, Expected: 8, Actual: len(field.Payload)}
	}
	return int64(binary.BigEndian.Uint64(field.Payload)), nil
}

// toInt64 accepts any of Go's integer kinds so callers do not need to match
// the registry's OID-specific width exactly.
func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	default:
		return 0, false
	}
}

func init() {
	mustRegister(Int2OID, int2Codec{})
	mustRegister(Int4OID, int4Codec{oid: Int4OID})
	mustRegister(OidOID, int4Codec{oid: OidOID})
	mustRegister(Int8OID, int8Codec{})
}
