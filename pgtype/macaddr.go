package pgtype

import "net"

type macaddrCodec struct{}

func (macaddrCodec) Serialize(value any, field *Field) ([]byte, error) {
	addr, ok := value.(net.HardwareAddr)
	if !ok {
		return nil, &TypeMismatchError{OID: MacaddrOID, Value: value}
	}
	if len(addr) != 6 {
		return nil, &LengthMismatchError{OID: MacaddrOID, Expected: 6, Actual: len(addr)}
	}
	buf := make([]byte, 6)
	copy(buf, addr)
	return buf, nil
}

func (macaddrCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 6 {
		return nil, &LengthMismatchError{OID: MacaddrOID, Expected: 6, Actual: len(field.Payload)}
	}
	addr := make(net.HardwareAddr, 6)
	copy(addr, field.Payload)
	return addr, nil
}

func init() {
	mustRegister(MacaddrOID, macaddrCodec{})
}
