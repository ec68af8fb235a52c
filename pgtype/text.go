package pgtype

type textCodec struct{ oid uint32 }

func (c textCodec) Serialize(value any, field *Field) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, &TypeMismatchError{OID: c.oid, Value: value}
	}
	return []byte(s), nil
}

func (c textCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	return string(field.Payload), nil
}

func init() {
	mustRegister(TextOID, textCodec{oid: TextOID})
	mustRegister(NameOID, textCodec{oid: NameOID})
}
