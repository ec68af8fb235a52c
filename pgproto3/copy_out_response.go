package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// CopyOutResponse announces that the backend is about to stream CopyData
// rows for a COPY ... TO STDOUT statement. Simple exec treats it as just
// another result-shaped message to discard: this package never drives a COPY
// session itself.
type CopyOutResponse struct {
	OverallFormat     byte
	ColumnFormatCodes []uint16
}

func (*CopyOutResponse) Backend() {}

func (dst *CopyOutResponse) Decode(src []byte) error {
	if len(src) < 3 {
		return &invalidMessageFormatErr{messageType: "CopyOutResponse", details: "truncated header"}
	}

	var overallFormat byte
	overallFormat, src = src[0], src[1:]

	var columnCount uint16
	src, columnCount = pgio.NextUint16(src)

	if len(src) != int(columnCount)*2 {
		return &invalidMessageFormatErr{messageType: "CopyOutResponse", details: "column format code count mismatch"}
	}

	columnFormatCodes := make([]uint16, columnCount)
	for i := range columnFormatCodes {
		src, columnFormatCodes[i] = pgio.NextUint16(src)
	}

	dst.OverallFormat = overallFormat
	dst.ColumnFormatCodes = columnFormatCodes
	return nil
}

func (src *CopyOutResponse) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'H')

	dst = append(dst, src.OverallFormat)
	dst = pgio.AppendUint16(dst, uint16(len(src.ColumnFormatCodes)))
	for _, code := range src.ColumnFormatCodes {
		dst = pgio.AppendUint16(dst, code)
	}

	return finishMessage(dst, sp)
}
