package pgproto3

// ErrorResponse field type codes, a subset of those PostgreSQL defines. See
// the error field enumeration in the protocol documentation for the rest;
// unrecognized codes are preserved in UnknownFields rather than dropped.
const (
	ErrorFieldSeverity         = 'S'
	ErrorFieldSeverityV2       = 'V'
	ErrorFieldCode             = 'C'
	ErrorFieldMessage          = 'M'
	ErrorFieldDetail           = 'D'
	ErrorFieldHint             = 'H'
	ErrorFieldPosition         = 'P'
	ErrorFieldInternalPosition = 'p'
	ErrorFieldInternalQuery    = 'q'
	ErrorFieldWhere            = 'W'
	ErrorFieldSchemaName       = 's'
	ErrorFieldTableName        = 't'
	ErrorFieldColumnName       = 'c'
	ErrorFieldDataTypeName     = 'd'
	ErrorFieldConstraintName   = 'n'
	ErrorFieldFile             = 'F'
	ErrorFieldLine             = 'L'
	ErrorFieldRoutine          = 'R'
)

// ErrorResponse reports an error the backend encountered while processing a
// request. It terminates the current extended-query sequence and, outside
// of a transaction, does not by itself end the session.
type ErrorResponse struct {
	Severity         string
	SeverityV2       string
	Code             string
	Message          string
	Detail           string
	Hint             string
	Position         int32
	InternalPosition int32
	InternalQuery    string
	Where            string
	SchemaName       string
	TableName        string
	ColumnName       string
	DataTypeName     string
	ConstraintName   string
	File             string
	Line             int32
	Routine          string

	UnknownFields map[byte]string
}

func (*ErrorResponse) Backend() {}

func (dst *ErrorResponse) Decode(src []byte) error {
	*dst = ErrorResponse{}

	for len(src) > 0 {
		fieldType := src[0]
		src = src[1:]
		if fieldType == 0 {
			return nil
		}

		rest, value, ok := nextCString(src)
		if !ok {
			return &invalidMessageFormatErr{messageType: "ErrorResponse", details: "unterminated field value"}
		}
		src = rest

		switch fieldType {
		case ErrorFieldSeverity:
			dst.Severity = value
		case ErrorFieldSeverityV2:
			dst.SeverityV2 = value
		case ErrorFieldCode:
			dst.Code = value
		case ErrorFieldMessage:
			dst.Message = value
		case ErrorFieldDetail:
			dst.Detail = value
		case ErrorFieldHint:
			dst.Hint = value
		case ErrorFieldPosition:
			dst.Position = decimalToInt32(value)
		case ErrorFieldInternalPosition:
			dst.InternalPosition = decimalToInt32(value)
		case ErrorFieldInternalQuery:
			dst.InternalQuery = value
		case ErrorFieldWhere:
			dst.Where = value
		case ErrorFieldSchemaName:
			dst.SchemaName = value
		case ErrorFieldTableName:
			dst.TableName = value
		case ErrorFieldColumnName:
			dst.ColumnName = value
		case ErrorFieldDataTypeName:
			dst.DataTypeName = value
		case ErrorFieldConstraintName:
			dst.ConstraintName = value
		case ErrorFieldFile:
			dst.File = value
		case ErrorFieldLine:
			dst.Line = decimalToInt32(value)
		case ErrorFieldRoutine:
			dst.Routine = value
		default:
			if dst.UnknownFields == nil {
				dst.UnknownFields = make(map[byte]string)
			}
			dst.UnknownFields[fieldType] = value
		}
	}

	return &invalidMessageFormatErr{messageType: "ErrorResponse", details: "missing terminator"}
}

func (src *ErrorResponse) Encode(dst []byte) []byte {
	return src.encode(dst, 'E')
}

func (src *ErrorResponse) encode(dst []byte, typeByte byte) []byte {
	dst, sp := beginMessage(dst, typeByte)

	dst = appendErrorField(dst, ErrorFieldSeverity, src.Severity)
	dst = appendErrorField(dst, ErrorFieldSeverityV2, src.SeverityV2)
	dst = appendErrorField(dst, ErrorFieldCode, src.Code)
	dst = appendErrorField(dst, ErrorFieldMessage, src.Message)
	dst = appendErrorField(dst, ErrorFieldDetail, src.Detail)
	dst = appendErrorField(dst, ErrorFieldHint, src.Hint)
	if src.Position != 0 {
		dst = appendErrorField(dst, ErrorFieldPosition, int32ToDecimal(src.Position))
	}
	if src.InternalPosition != 0 {
		dst = appendErrorField(dst, ErrorFieldInternalPosition, int32ToDecimal(src.InternalPosition))
	}
	dst = appendErrorField(dst, ErrorFieldInternalQuery, src.InternalQuery)
	dst = appendErrorField(dst, ErrorFieldWhere, src.Where)
	dst = appendErrorField(dst, ErrorFieldSchemaName, src.SchemaName)
	dst = appendErrorField(dst, ErrorFieldTableName, src.TableName)
	dst = appendErrorField(dst, ErrorFieldColumnName, src.ColumnName)
	dst = appendErrorField(dst, ErrorFieldDataTypeName, src.DataTypeName)
	dst = appendErrorField(dst, ErrorFieldConstraintName, src.ConstraintName)
	dst = appendErrorField(dst, ErrorFieldFile, src.File)
	if src.Line != 0 {
		dst = appendErrorField(dst, ErrorFieldLine, int32ToDecimal(src.Line))
	}
	dst = appendErrorField(dst, ErrorFieldRoutine, src.Routine)

	for k, v := range src.UnknownFields {
		dst = appendErrorField(dst, k, v)
	}

	dst = append(dst, 0)

	return finishMessage(dst, sp)
}

func appendErrorField(dst []byte, fieldType byte, value string) []byte {
	if value == "" {
		return dst
	}
	dst = append(dst, fieldType)
	dst = append(dst, value...)
	dst = append(dst, 0)
	return dst
}

func decimalToInt32(s string) int32 {
	var n int32
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int32(c-'0')
	}
	return n
}

func int32ToDecimal(n int32) string {
	if n == 0 {
		return "0"
	}
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
