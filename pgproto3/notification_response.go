package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// NotificationResponse delivers a LISTEN/NOTIFY payload sent asynchronously
// by another backend, independent of any command the frontend issued.
type NotificationResponse struct {
	PID     uint32
	Channel string
	Payload string
}

func (*NotificationResponse) Backend() {}

func (dst *NotificationResponse) Decode(src []byte) error {
	if len(src) < 4 {
		return &invalidMessageFormatErr{messageType: "NotificationResponse", details: "truncated pid"}
	}
	rest, pid := pgio.NextUint32(src)

	var channel, payload string
	var ok bool
	rest, channel, ok = nextCString(rest)
	if !ok {
		return &invalidMessageFormatErr{messageType: "NotificationResponse", details: "unterminated channel"}
	}
	rest, payload, ok = nextCString(rest)
	if !ok {
		return &invalidMessageFormatErr{messageType: "NotificationResponse", details: "unterminated payload"}
	}
	if len(rest) != 0 {
		return &invalidMessageFormatErr{messageType: "NotificationResponse", details: "unexpected trailing bytes"}
	}

	dst.PID = pid
	dst.Channel = channel
	dst.Payload = payload
	return nil
}

func (src *NotificationResponse) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'A')
	dst = pgio.AppendUint32(dst, src.PID)
	dst = append(dst, src.Channel...)
	dst = append(dst, 0)
	dst = append(dst, src.Payload...)
	dst = append(dst, 0)
	return finishMessage(dst, sp)
}
