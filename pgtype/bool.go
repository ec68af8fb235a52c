package pgtype

type boolCodec struct{}

func (boolCodec) Serialize(value any, field *Field) ([]byte, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, &TypeMismatchError{OID: BoolOID, Value: value}
	}
	if b {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

func (boolCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 1 {
		return nil, &LengthMismatchError{OID: BoolOID, Expected: 1, Actual: len(field.Payload)}
	}
	return field.Payload[0] != 0, nil
}

func init() {
	mustRegister(BoolOID, boolCodec{})
}
