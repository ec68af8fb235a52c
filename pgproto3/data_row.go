package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// DataRow carries one row of a result set. Values holds the raw wire bytes
// of each column in its declared format (text or binary per the preceding
// RowDescription); a nil entry is a SQL NULL.
type DataRow struct {
	Values [][]byte
}

func (*DataRow) Backend() {}

func (dst *DataRow) Decode(src []byte) error {
	if len(src) < 2 {
		return &invalidMessageFormatErr{messageType: "DataRow", details: "truncated field count"}
	}

	var fieldCount uint16
	src, fieldCount = pgio.NextUint16(src)

	if cap(dst.Values) < int(fieldCount) || cap(dst.Values)-int(fieldCount) > 32 {
		dst.Values = make([][]byte, fieldCount, 32)
	} else {
		dst.Values = dst.Values[:fieldCount]
	}

	for i := range dst.Values {
		if len(src) < 4 {
			return &invalidMessageFormatErr{messageType: "DataRow", details: "truncated column length"}
		}
		var size int32
		src, size = pgio.NextInt32(src)
		if size == -1 {
			dst.Values[i] = nil
			continue
		}
		if len(src) < int(size) {
			return &invalidMessageFormatErr{messageType: "DataRow", details: "truncated column value"}
		}
		dst.Values[i] = src[:size]
		src = src[size:]
	}

	return nil
}

func (src *DataRow) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'D')

	dst = pgio.AppendUint16(dst, uint16(len(src.Values)))
	for _, v := range src.Values {
		if v == nil {
			dst = pgio.AppendInt32(dst, -1)
			continue
		}
		dst = pgio.AppendInt32(dst, int32(len(v)))
		dst = append(dst, v...)
	}

	return finishMessage(dst, sp)
}
