package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// Parse asks the backend to prepare Query under Name (the empty string for
// the unnamed statement), optionally pinning the types of its parameters.
type Parse struct {
	Name          string
	Query         string
	ParameterOIDs []uint32
}

func (*Parse) Frontend() {}

func (dst *Parse) Decode(src []byte) error {
	*dst = Parse{}

	var ok bool
	src, dst.Name, ok = nextCString(src)
	if !ok {
		return &invalidMessageFormatErr{messageType: "Parse", details: "unterminated name"}
	}
	src, dst.Query, ok = nextCString(src)
	if !ok {
		return &invalidMessageFormatErr{messageType: "Parse", details: "unterminated query"}
	}

	if len(src) < 2 {
		return &invalidMessageFormatErr{messageType: "Parse", details: "truncated parameter OID count"}
	}
	var oidCount uint16
	src, oidCount = pgio.NextUint16(src)

	if len(src) < int(oidCount)*4 {
		return &invalidMessageFormatErr{messageType: "Parse", details: "truncated parameter OIDs"}
	}
	if oidCount > 0 {
		dst.ParameterOIDs = make([]uint32, oidCount)
		for i := range dst.ParameterOIDs {
			src, dst.ParameterOIDs[i] = pgio.NextUint32(src)
		}
	}

	return nil
}

func (src *Parse) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'P')

	dst = append(dst, src.Name...)
	dst = append(dst, 0)
	dst = append(dst, src.Query...)
	dst = append(dst, 0)

	dst = pgio.AppendUint16(dst, uint16(len(src.ParameterOIDs)))
	for _, oid := range src.ParameterOIDs {
		dst = pgio.AppendUint32(dst, oid)
	}

	return finishMessage(dst, sp)
}
