package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// StartupMessage is the first message the frontend sends, before any type
// byte or authentication exchange: a protocol version followed by a
// null-terminated sequence of parameter name/value pairs, ending in an extra
// NUL. It has no message-type byte of its own.
type StartupMessage struct {
	ProtocolVersion uint32
	Parameters      map[string]string
}

func (*StartupMessage) Frontend() {}

func (dst *StartupMessage) Decode(src []byte) error {
	if len(src) < 4 {
		return &invalidMessageFormatErr{messageType: "StartupMessage", details: "too short"}
	}

	var rest []byte
	rest, dst.ProtocolVersion = pgio.NextUint32(src)
	dst.Parameters = make(map[string]string)

	for len(rest) > 1 {
		var key, value string
		var ok bool
		rest, key, ok = nextCString(rest)
		if !ok {
			return &invalidMessageFormatErr{messageType: "StartupMessage", details: "unterminated parameter name"}
		}
		rest, value, ok = nextCString(rest)
		if !ok {
			return &invalidMessageFormatErr{messageType: "StartupMessage", details: "unterminated parameter value"}
		}
		dst.Parameters[key] = value
	}

	return nil
}

// Encode appends the wire representation of msg to dst. Unlike every other
// message in this package, StartupMessage has no type byte; its length
// prefix covers itself and everything after it.
func (src *StartupMessage) Encode(dst []byte) []byte {
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = pgio.AppendUint32(dst, src.ProtocolVersion)
	for k, v := range src.Parameters {
		dst = append(dst, k...)
		dst = append(dst, 0)
		dst = append(dst, v...)
		dst = append(dst, 0)
	}
	dst = append(dst, 0)

	pgio.SetInt32(dst[sp:], int32(len(dst)-sp))
	return dst
}
