package pgproto3

// ParameterStatus reports the current value of a backend run-time parameter
// (e.g. server_version, TimeZone), sent at connection start and whenever the
// value changes.
type ParameterStatus struct {
	Name  string
	Value string
}

func (*ParameterStatus) Backend() {}

func (dst *ParameterStatus) Decode(src []byte) error {
	rest, name, ok := nextCString(src)
	if !ok {
		return &invalidMessageFormatErr{messageType: "ParameterStatus", details: "unterminated name"}
	}
	rest, value, ok := nextCString(rest)
	if !ok {
		return &invalidMessageFormatErr{messageType: "ParameterStatus", details: "unterminated value"}
	}
	if len(rest) != 0 {
		return &invalidMessageFormatErr{messageType: "ParameterStatus", details: "unexpected trailing bytes"}
	}
	dst.Name = name
	dst.Value = value
	return nil
}

func (src *ParameterStatus) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'S')
	dst = append(dst, src.Name...)
	dst = append(dst, 0)
	dst = append(dst, src.Value...)
	dst = append(dst, 0)
	return finishMessage(dst, sp)
}
