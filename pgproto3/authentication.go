package pgproto3

import (
	"github.com/hlandau/pgwire/internal/pgio"
)

// Authentication request subtype codes, sent as the first 4 bytes of an
// AuthenticationRequest message body.
const (
	AuthTypeOk                = 0
	AuthTypeCleartextPassword = 3
	AuthTypeMD5Password       = 5
)

// AuthenticationRequest is sent by the backend in response to a StartupMessage
// to request a particular authentication method, or to signal that
// authentication has already succeeded.
//
// SCRAM and GSSAPI authentication subtypes are not decoded; Decode returns an
// error for any Type this package does not implement.
type AuthenticationRequest struct {
	Type uint32

	// Salt is populated only when Type is AuthTypeMD5Password.
	Salt [4]byte
}

func (*AuthenticationRequest) Backend() {}

func (dst *AuthenticationRequest) Decode(src []byte) error {
	if len(src) < 4 {
		return &invalidMessageLenErr{messageType: "AuthenticationRequest", expectedLen: 4, actualLen: len(src)}
	}

	var rest []byte
	rest, dst.Type = pgio.NextUint32(src)

	switch dst.Type {
	case AuthTypeOk, AuthTypeCleartextPassword:
	case AuthTypeMD5Password:
		if len(rest) < 4 {
			return &invalidMessageLenErr{messageType: "AuthenticationRequest", expectedLen: 8, actualLen: len(src)}
		}
		copy(dst.Salt[:], rest[:4])
	default:
		return &invalidMessageFormatErr{messageType: "AuthenticationRequest", details: "unsupported authentication type"}
	}

	return nil
}

func (src *AuthenticationRequest) Encode(dst []byte) []byte {
	dst, sp := beginMessage(dst, 'R')
	dst = pgio.AppendUint32(dst, src.Type)
	if src.Type == AuthTypeMD5Password {
		dst = append(dst, src.Salt[:]...)
	}
	return finishMessage(dst, sp)
}
