package pgconn

import (
	"strconv"
	"strings"
)

// CommandTag is the tag a CommandComplete carries, e.g. "UPDATE 3" or
// "SELECT 12".
type CommandTag []byte

func (ct CommandTag) String() string {
	return string(ct)
}

// RowsAffected parses the row count suffix of the tag. It returns 0 for
// commands that don't report one (e.g. "CREATE TABLE").
func (ct CommandTag) RowsAffected() int64 {
	s := string(ct)
	idx := strings.LastIndexByte(s, ' ')
	if idx == -1 {
		return 0
	}
	n, err := strconv.ParseInt(s[idx+1:], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
