package pgtype

import (
	"encoding/binary"
	"time"
)

// pgEpochJulianDay is date2j(2000, 1, 1): the Julian day number of the
// PostgreSQL epoch that the wire format's day count is relative to.
var pgEpochJulianDay = date2j(2000, 1, 1)

// date2j converts a calendar date to a Julian day number using the
// conventional integer formulation with century correction.
func date2j(year, month, day int) int {
	m12 := (month - 14) / 12
	return (1461*(year+4800+m12))/4 + (367*(month-2-12*m12))/12 - (3*((year+4900+m12)/100))/4 + day - 32075
}

// j2date is the inverse of date2j: it recovers the calendar date (by day of
// month, not day of week) for a Julian day number.
func j2date(jd int) (year, month, day int) {
	l := jd + 68569
	n := (4 * l) / 146097
	l -= (146097*n + 3) / 4
	i := (4000 * (l + 1)) / 1461001
	l += 31 - (1461*i)/4
	j := (80 * l) / 2447
	day = l - (2447*j)/80
	l = j / 11
	month = (j + 2) - (12 * l)
	year = 100*(n-49) + i + l
	return year, month, day
}

type dateCodec struct{}

func (dateCodec) Serialize(value any, field *Field) ([]byte, error) {
	t, ok := value.(time.Time)
	if !ok {
		return nil, &TypeMismatchError{OID: DateOID, Value: value}
	}
	jd := date2j(t.Year(), int(t.Month()), t.Day())
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(int32(jd-pgEpochJulianDay)))
	return buf, nil
}

func (dateCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	if len(field.Payload) != 4 {
		return nil, &LengthMismatchError{OID: DateOID, Expected: 4, Actual: len(field.Payload)}
	}
	dayOffset := int32(binary.BigEndian.Uint32(field.Payload))
	year, month, day := j2date(pgEpochJulianDay + int(dayOffset))
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func init() {
	mustRegister(DateOID, dateCodec{})
}
