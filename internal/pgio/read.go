package pgio

func NextUint16(buf []byte) ([]byte, uint16) {
	n := uint16(buf[0])<<8 | uint16(buf[1])
	return buf[2:], n
}

func NextUint32(buf []byte) ([]byte, uint32) {
	n := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	return buf[4:], n
}

func NextUint64(buf []byte) ([]byte, uint64) {
	n := uint64(buf[0])<<56 | uint64(buf[1])<<48 | uint64(buf[2])<<40 | uint64(buf[3])<<32 |
		uint64(buf[4])<<24 | uint64(buf[5])<<16 | uint64(buf[6])<<8 | uint64(buf[7])
	return buf[8:], n
}

func NextInt16(buf []byte) ([]byte, int16) {
	buf, n := NextUint16(buf)
	return buf, int16(n)
}

func NextInt32(buf []byte) ([]byte, int32) {
	buf, n := NextUint32(buf)
	return buf, int32(n)
}

func NextInt64(buf []byte) ([]byte, int64) {
	buf, n := NextUint64(buf)
	return buf, int64(n)
}
