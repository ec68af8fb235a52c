package pgproto3

// Sync marks the end of an extended-query message sequence, asking the
// backend to close the transaction's error barrier and return a
// ReadyForQuery.
type Sync struct{}

func (*Sync) Frontend() {}

func (dst *Sync) Decode(src []byte) error {
	if len(src) != 0 {
		return &invalidMessageLenErr{messageType: "Sync", expectedLen: 0, actualLen: len(src)}
	}
	return nil
}

func (src *Sync) Encode(dst []byte) []byte {
	return append(dst, 'S', 0, 0, 0, 4)
}
