package pgproto3

// Query runs a SQL string using the simple query protocol: one or more
// statements, executed to completion in text format, with no parameter
// binding.
type Query struct {
	String string
}

func (*Query) Frontend() {}

func (dst *Query) Decode(src []byte) error {
	rest, s, ok := nextCString(src)
	if !ok {
		return &invalidMessageFormatErr{messageType: "Query", details: "unterminated query string"}
	}
	if len(rest) != 0 {
		return &invalidMessageFormatErr{messageType: "Query", details: "unexpected trailing bytes"}
	}
	dst.String = s
	return nil
}

func (src *Query) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'Q')
	dst = append(dst, src.String...)
	dst = append(dst, 0)
	return finishMessage(dst, sp)
}
