package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// FieldDescription describes one column of a result set: its name, the
// table and attribute it came from (when it came from a table column
// directly), its type, and the format the accompanying DataRow values use.
type FieldDescription struct {
	Name                 string
	TableOID             uint32
	TableAttributeNumber uint16
	DataTypeOID          uint32
	DataTypeSize         int16
	TypeModifier         int32
	Format               int16
}

// RowDescription announces the shape of the rows that follow, one
// FieldDescription per column, in column order.
type RowDescription struct {
	Fields []FieldDescription
}

func (*RowDescription) Backend() {}

func (dst *RowDescription) Decode(src []byte) error {
	if len(src) < 2 {
		return &invalidMessageFormatErr{messageType: "RowDescription", details: "truncated field count"}
	}

	var fieldCount uint16
	src, fieldCount = pgio.NextUint16(src)

	dst.Fields = make([]FieldDescription, fieldCount)
	for i := range dst.Fields {
		fd := &dst.Fields[i]

		var name string
		var ok bool
		src, name, ok = nextCString(src)
		if !ok {
			return &invalidMessageFormatErr{messageType: "RowDescription", details: "unterminated field name"}
		}
		fd.Name = name

		if len(src) < 18 {
			return &invalidMessageFormatErr{messageType: "RowDescription", details: "truncated field descriptor"}
		}
		src, fd.TableOID = pgio.NextUint32(src)
		src, fd.TableAttributeNumber = pgio.NextUint16(src)
		src, fd.DataTypeOID = pgio.NextUint32(src)
		src, fd.DataTypeSize = pgio.NextInt16(src)
		src, fd.TypeModifier = pgio.NextInt32(src)
		src, fd.Format = pgio.NextInt16(src)
	}

	return nil
}

func (src *RowDescription) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'T')

	dst = pgio.AppendUint16(dst, uint16(len(src.Fields)))
	for _, fd := range src.Fields {
		dst = append(dst, fd.Name...)
		dst = append(dst, 0)

		dst = pgio.AppendUint32(dst, fd.TableOID)
		dst = pgio.AppendUint16(dst, fd.TableAttributeNumber)
		dst = pgio.AppendUint32(dst, fd.DataTypeOID)
		dst = pgio.AppendInt16(dst, fd.DataTypeSize)
		dst = pgio.AppendInt32(dst, fd.TypeModifier)
		dst = pgio.AppendInt16(dst, fd.Format)
	}

	return finishMessage(dst, sp)
}
