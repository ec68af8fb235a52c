package pgtype

import (
	"fmt"
	"net"
)

const (
	afInet  = 2
	afInet6 = 3
)

// inetCodec backs both the inet and cidr OIDs. PostgreSQL's wire format
// carries an is-cidr byte distinguishing the two, but the server ignores it
// on input and this package does too: both OIDs decode to the same
// *net.IPNet and encode the same bytes, differing only in which OID the
// field description carries.
type inetCodec struct{ oid uint32 }

func (c inetCodec) Serialize(value any, field *Field) ([]byte, error) {
	ipnet, ok := value.(*net.IPNet)
	if !ok {
		return nil, &TypeMismatchError{OID: c.oid, Value: value}
	}

	var family byte
	switch len(ipnet.IP) {
	case net.IPv4len:
		family = afInet
	case net.IPv6len:
		family = afInet6
	default:
		return nil, fmt.Errorf("pgtype: unexpected IP length: %d", len(ipnet.IP))
	}

	ones, _ := ipnet.Mask.Size()

	buf := make([]byte, 0, 4+len(ipnet.IP))
	buf = append(buf, family, byte(ones), 0, byte(len(ipnet.IP)))
	buf = append(buf, ipnet.IP...)
	return buf, nil
}

func (c inetCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	src := field.Payload
	if len(src) < 4 {
		return nil, &LengthMismatchError{OID: c.oid, Expected: 4, Actual: len(src)}
	}

	family := src[0]
	bits := src[1]
	addrLen := int(src[3])
	if family != afInet && family != afInet6 {
		return nil, fmt.Errorf("pgtype: unknown inet address family: %d", family)
	}
	if len(src) != 4+addrLen {
		return nil, &LengthMismatchError{OID: c.oid, Expected: 4 + addrLen, Actual: len(src)}
	}

	ip := make(net.IP, addrLen)
	copy(ip, src[4:])

	return &net.IPNet{IP: ip, Mask: net.CIDRMask(int(bits), addrLen*8)}, nil
}

func init() {
	mustRegister(InetOID, inetCodec{oid: InetOID})
	mustRegister(CidrOID, inetCodec{oid: CidrOID})
}
