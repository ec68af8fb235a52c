package pgtype

type byteaCodec struct{}

func (byteaCodec) Serialize(value any, field *Field) ([]byte, error) {
	b, ok := value.([]byte)
	if !ok {
		return nil, &TypeMismatchError{OID: ByteaOID, Value: value}
	}
	return b, nil
}

func (byteaCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	buf := make([]byte, len(field.Payload))
	copy(buf, field.Payload)
	return buf, nil
}

func init() {
	mustRegister(ByteaOID, byteaCodec{})
}
