package pgproto3

// Describe asks the backend to send a ParameterDescription and either a
// RowDescription or NoData for the named prepared statement ('S') or portal
// ('P').
type Describe struct {
	ObjectType byte // 'S' or 'P'
	Name       string
}

func (*Describe) Frontend() {}

func (dst *Describe) Decode(src []byte) error {
	if len(src) < 1 {
		return &invalidMessageFormatErr{messageType: "Describe", details: "missing object type"}
	}
	dst.ObjectType = src[0]
	if dst.ObjectType != 'S' && dst.ObjectType != 'P' {
		return &invalidMessageFormatErr{messageType: "Describe", details: "invalid object type"}
	}

	rest, name, ok := nextCString(src[1:])
	if !ok {
		return &invalidMessageFormatErr{messageType: "Describe", details: "unterminated name"}
	}
	if len(rest) != 0 {
		return &invalidMessageFormatErr{messageType: "Describe", details: "unexpected trailing bytes"}
	}
	dst.Name = name
	return nil
}

func (src *Describe) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'D')
	dst = append(dst, src.ObjectType)
	dst = append(dst, src.Name...)
	dst = append(dst, 0)
	return finishMessage(dst, sp)
}
