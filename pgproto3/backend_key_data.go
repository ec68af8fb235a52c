package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// BackendKeyData supplies the process ID and secret key the frontend needs
// to issue a CancelRequest against this backend.
type BackendKeyData struct {
	ProcessID uint32
	SecretKey uint32
}

func (*BackendKeyData) Backend() {}

func (dst *BackendKeyData) Decode(src []byte) error {
	if len(src) != 8 {
		return &invalidMessageLenErr{messageType: "BackendKeyData", expectedLen: 8, actualLen: len(src)}
	}

	src, dst.ProcessID = pgio.NextUint32(src)
	_, dst.SecretKey = pgio.NextUint32(src)
	return nil
}

func (src *BackendKeyData) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'K')
	dst = pgio.AppendUint32(dst, src.ProcessID)
	dst = pgio.AppendUint32(dst, src.SecretKey)
	return finishMessage(dst, sp)
}
