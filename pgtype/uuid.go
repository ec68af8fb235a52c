package pgtype

import (
	"github.com/gofrs/uuid"
)

type uuidCodec struct{}

func (uuidCodec) Serialize(value any, field *Field) ([]byte, error) {
	v, ok := value.(uuid.UUID)
	if !ok {
		return nil, &TypeMismatchError{OID: UUIDOID, Value: value}
	}
	return v.Bytes(), nil
}

func (uuidCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 16 {
		return nil, &LengthMismatchError{OID: UUIDOID, Expected: 16, Actual: len(field.Payload)}
	}
	var v uuid.UUID
	copy(v[:], field.Payload)
	return v, nil
}

func init() {
	mustRegister(UUIDOID, uuidCodec{})
}
