package pgproto3

// ParseComplete acknowledges a successful Parse.
type ParseComplete struct{}

func (*ParseComplete) Backend() {}

func (dst *ParseComplete) Decode(src []byte) error {
	return decodeEmptyBody("ParseComplete", src)
}

func (src *ParseComplete) Encode(dst []byte) []byte {
	return append(dst, '1', 0, 0, 0, 4)
}

// BindComplete acknowledges a successful Bind.
type BindComplete struct{}

func (*BindComplete) Backend() {}

func (dst *BindComplete) Decode(src []byte) error {
	return decodeEmptyBody("BindComplete", src)
}

func (src *BindComplete) Encode(dst []byte) []byte {
	return append(dst, '2', 0, 0, 0, 4)
}

// CloseComplete acknowledges a successful Close.
type CloseComplete struct{}

func (*CloseComplete) Backend() {}

func (dst *CloseComplete) Decode(src []byte) error {
	return decodeEmptyBody("CloseComplete", src)
}

func (src *CloseComplete) Encode(dst []byte) []byte {
	return append(dst, '3', 0, 0, 0, 4)
}

// NoData is sent in place of RowDescription when a Describe'd statement or
// portal returns no rows.
type NoData struct{}

func (*NoData) Backend() {}

func (dst *NoData) Decode(src []byte) error {
	return decodeEmptyBody("NoData", src)
}

func (src *NoData) Encode(dst []byte) []byte {
	return append(dst, 'n', 0, 0, 0, 4)
}

// EmptyQueryResponse is sent in place of CommandComplete when a Query or
// Execute's statement text was empty.
type EmptyQueryResponse struct{}

func (*EmptyQueryResponse) Backend() {}

func (dst *EmptyQueryResponse) Decode(src []byte) error {
	return decodeEmptyBody("EmptyQueryResponse", src)
}

func (src *EmptyQueryResponse) Encode(dst []byte) []byte {
	return append(dst, 'I', 0, 0, 0, 4)
}

// Terminate politely closes the connection.
type Terminate struct{}

func (*Terminate) Frontend() {}

func (dst *Terminate) Decode(src []byte) error {
	return decodeEmptyBody("Terminate", src)
}

func (src *Terminate) Encode(dst []byte) []byte {
	return append(dst, 'X', 0, 0, 0, 4)
}

func decodeEmptyBody(messageType string, src []byte) error {
	if len(src) != 0 {
		return &invalidMessageLenErr{messageType: messageType, expectedLen: 0, actualLen: len(src)}
	}
	return nil
}
