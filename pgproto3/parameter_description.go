package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// ParameterDescription reports the inferred types of a prepared statement's
// parameters, in ordinal position, in response to Describe('S', ...).
type ParameterDescription struct {
	ParameterOIDs []uint32
}

func (*ParameterDescription) Backend() {}

func (dst *ParameterDescription) Decode(src []byte) error {
	if len(src) < 2 {
		return &invalidMessageFormatErr{messageType: "ParameterDescription", details: "truncated parameter count"}
	}
	var count uint16
	src, count = pgio.NextUint16(src)

	if len(src) != int(count)*4 {
		return &invalidMessageFormatErr{messageType: "ParameterDescription", details: "truncated parameter OIDs"}
	}
	dst.ParameterOIDs = make([]uint32, count)
	for i := range dst.ParameterOIDs {
		src, dst.ParameterOIDs[i] = pgio.NextUint32(src)
	}
	return nil
}

func (src *ParameterDescription) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 't')
	dst = pgio.AppendUint16(dst, uint16(len(src.ParameterOIDs)))
	for _, oid := range src.ParameterOIDs {
		dst = pgio.AppendUint32(dst, oid)
	}
	return finishMessage(dst, sp)
}
