package pgproto3

// NoticeResponse carries a warning or informational message that does not
// abort the command in progress. It shares ErrorResponse's field layout.
type NoticeResponse ErrorResponse

func (*NoticeResponse) Backend() {}

func (dst *NoticeResponse) Decode(src []byte) error {
	return (*ErrorResponse)(dst).Decode(src)
}

func (src *NoticeResponse) Encode(dst []byte) []byte {
	return (*ErrorResponse)(src).encode(dst, 'N')
}
