package pgproto3

// Transaction status codes reported in ReadyForQuery.
const (
	TxStatusIdle              = 'I'
	TxStatusInTransaction     = 'T'
	TxStatusFailedTransaction = 'E'
)

// ReadyForQuery tells the frontend the backend is idle and ready to accept
// a new command. TxStatus reflects the transaction the backend is now in.
type ReadyForQuery struct {
	TxStatus byte
}

func (*ReadyForQuery) Backend() {}

func (dst *ReadyForQuery) Decode(src []byte) error {
	if len(src) != 1 {
		return &invalidMessageLenErr{messageType: "ReadyForQuery", expectedLen: 1, actualLen: len(src)}
	}
	switch src[0] {
	case TxStatusIdle, TxStatusInTransaction, TxStatusFailedTransaction:
	default:
		return &invalidMessageFormatErr{messageType: "ReadyForQuery", details: "invalid transaction status"}
	}
	dst.TxStatus = src[0]
	return nil
}

func (src *ReadyForQuery) Encode(dst []byte) []byte {
	return append(dst, 'Z', 0, 0, 0, 5, src.TxStatus)
}
