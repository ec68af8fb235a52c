// Package pgproto3 implements the PostgreSQL frontend/backend wire protocol
// version 3.0: a push-based frame codec plus typed message structs for every
// message this client speaks or understands.
package pgproto3

import (
	"bytes"
	"fmt"
)

// ProtocolVersionNumber is the protocol version this package speaks: 3.0.
const ProtocolVersionNumber uint32 = 0x00030000

// Message is the interface implemented by an object that can decode and
// encode a particular PostgreSQL wire message.
type Message interface {
	// Decode parses src, which is the message body (the bytes following the
	// 1-byte type and 4-byte length). Decode is allowed and expected to retain
	// a reference to src after returning.
	Decode(src []byte) error

	// Encode appends the wire representation of the message, including its
	// type byte and length prefix, to dst and returns the new slice.
	Encode(dst []byte) []byte
}

// FrontendMessage is a message sent by the frontend (the client).
type FrontendMessage interface {
	Message
	Frontend() // no-op method to distinguish frontend from backend messages
}

// BackendMessage is a message sent by the backend (the server).
type BackendMessage interface {
	Message
	Backend() // no-op method to distinguish backend from frontend messages
}

type invalidMessageLenErr struct {
	messageType string
	expectedLen int
	actualLen   int
}

func (e *invalidMessageLenErr) Error() string {
	return fmt.Sprintf("%s body must have length of %d, but it is %d", e.messageType, e.expectedLen, e.actualLen)
}

type invalidMessageFormatErr struct {
	messageType string
	details     string
}

func (e *invalidMessageFormatErr) Error() string {
	return fmt.Sprintf("%s body is invalid: %s", e.messageType, e.details)
}

// UnknownMessageTypeError is returned by Decode when a frame's type byte does
// not correspond to any known message.
type UnknownMessageTypeError struct {
	Type byte
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("unknown message type: %q", e.Type)
}

// nextCString splits src on its first NUL byte, returning the string before
// it and the remainder of src after it. It reports false if src contains no
// NUL byte.
//
// github.com/jackc/pgio's NextCString returns the wrong remainder slice, so
// message decoders use this instead.
func nextCString(src []byte) (rest []byte, s string, ok bool) {
	idx := bytes.IndexByte(src, 0)
	if idx < 0 {
		return src, "", false
	}
	return src[idx+1:], string(src[:idx]), true
}
