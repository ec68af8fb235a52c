package pgtype

import (
	"encoding/binary"
	"math"
)

type float4Codec struct{}

func (float4Codec) Serialize(value any, field *Field) ([]byte, error) {
	f, ok := toFloat64(value)
	if !ok {
		return nil, &TypeMismatchError{OID: Float4OID, Value: value}
	}
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, math.Float32bits(float32(f)))
	return buf, nil
}

func (float4Codec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 4 {
		return nil, &LengthMismatchError{OID: Float4OID, Expected: 4, Actual: len(field.Payload)}
	}
	return math.Float32frombits(binary.BigEndian.Uint32(field.Payload)), nil
}

type float8Codec struct{}

func (float8Codec) Serialize(value any, field *Field) ([]byte, error) {
	f, ok := toFloat64(value)
	if !ok {
		return nil, &TypeMismatchError{OID: Float8OID, Value: value}
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(f))
	return buf, nil
}

func (float8Codec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 8 {
		return nil, &LengthMismatchError{OID: Float8OID, Expected: 8, Actual: len(field.Payload)}
	}
	return math.Float64frombits(binary.BigEndian.Uint64(field.Payload)), nil
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func init() {
	mustRegister(Float4OID, float4Codec{})
	mustRegister(Float8OID, float8Codec{})
}
