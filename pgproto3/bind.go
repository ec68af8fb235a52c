package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// Bind binds parameter values to a previously parsed statement, producing a
// named or unnamed portal that Execute can then run.
type Bind struct {
	DestinationPortal    string
	PreparedStatement    string
	ParameterFormatCodes []int16
	Parameters           [][]byte
	ResultFormatCodes    []int16
}

func (*Bind) Frontend() {}

func (dst *Bind) Decode(src []byte) error {
	*dst = Bind{}

	var ok bool
	src, dst.DestinationPortal, ok = nextCString(src)
	if !ok {
		return &invalidMessageFormatErr{messageType: "Bind", details: "unterminated destination portal"}
	}
	src, dst.PreparedStatement, ok = nextCString(src)
	if !ok {
		return &invalidMessageFormatErr{messageType: "Bind", details: "unterminated prepared statement"}
	}

	if len(src) < 2 {
		return &invalidMessageFormatErr{messageType: "Bind", details: "truncated parameter format code count"}
	}
	var paramFormatCount uint16
	src, paramFormatCount = pgio.NextUint16(src)
	if len(src) < int(paramFormatCount)*2 {
		return &invalidMessageFormatErr{messageType: "Bind", details: "truncated parameter format codes"}
	}
	if paramFormatCount > 0 {
		dst.ParameterFormatCodes = make([]int16, paramFormatCount)
		for i := range dst.ParameterFormatCodes {
			src, dst.ParameterFormatCodes[i] = pgio.NextInt16(src)
		}
	}

	if len(src) < 2 {
		return &invalidMessageFormatErr{messageType: "Bind", details: "truncated parameter count"}
	}
	var paramCount uint16
	src, paramCount = pgio.NextUint16(src)
	if paramCount > 0 {
		dst.Parameters = make([][]byte, paramCount)
		for i := range dst.Parameters {
			if len(src) < 4 {
				return &invalidMessageFormatErr{messageType: "Bind", details: "truncated parameter length"}
			}
			var size int32
			src, size = pgio.NextInt32(src)
			if size == -1 {
				continue
			}
			if len(src) < int(size) {
				return &invalidMessageFormatErr{messageType: "Bind", details: "truncated parameter value"}
			}
			dst.Parameters[i] = src[:size]
			src = src[size:]
		}
	}

	if len(src) < 2 {
		return &invalidMessageFormatErr{messageType: "Bind", details: "truncated result format code count"}
	}
	var resultFormatCount uint16
	src, resultFormatCount = pgio.NextUint16(src)
	if len(src) < int(resultFormatCount)*2 {
		return &invalidMessageFormatErr{messageType: "Bind", details: "truncated result format codes"}
	}
	dst.ResultFormatCodes = make([]int16, resultFormatCount)
	for i := range dst.ResultFormatCodes {
		src, dst.ResultFormatCodes[i] = pgio.NextInt16(src)
	}

	return nil
}

func (src *Bind) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'B')

	dst = append(dst, src.DestinationPortal...)
	dst = append(dst, 0)
	dst = append(dst, src.PreparedStatement...)
	dst = append(dst, 0)

	dst = pgio.AppendUint16(dst, uint16(len(src.ParameterFormatCodes)))
	for _, fc := range src.ParameterFormatCodes {
		dst = pgio.AppendInt16(dst, fc)
	}

	dst = pgio.AppendUint16(dst, uint16(len(src.Parameters)))
	for _, p := range src.Parameters {
		if p == nil {
			dst = pgio.AppendInt32(dst, -1)
			continue
		}
		dst = pgio.AppendInt32(dst, int32(len(p)))
		dst = append(dst, p...)
	}

	dst = pgio.AppendUint16(dst, uint16(len(src.ResultFormatCodes)))
	for _, fc := range src.ResultFormatCodes {
		dst = pgio.AppendInt16(dst, fc)
	}

	return finishMessage(dst, sp)
}
