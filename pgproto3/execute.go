package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// Execute runs the named portal (the empty string for the unnamed portal),
// returning at most MaxRows rows. MaxRows of 0 means no limit.
type Execute struct {
	Portal  string
	MaxRows uint32
}

func (*Execute) Frontend() {}

func (dst *Execute) Decode(src []byte) error {
	rest, portal, ok := nextCString(src)
	if !ok {
		return &invalidMessageFormatErr{messageType: "Execute", details: "unterminated portal name"}
	}
	if len(rest) != 4 {
		return &invalidMessageFormatErr{messageType: "Execute", details: "truncated max rows"}
	}
	dst.Portal = portal
	_, dst.MaxRows = pgio.NextUint32(rest)
	return nil
}

func (src *Execute) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'E')
	dst = append(dst, src.Portal...)
	dst = append(dst, 0)
	dst = pgio.AppendUint32(dst, src.MaxRows)
	return finishMessage(dst, sp)
}
