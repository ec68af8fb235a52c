// Package pgtype implements the process-wide registry mapping a PostgreSQL
// type OID to a pair of pure functions over the binary wire format: one that
// turns a Go value into wire bytes, and one that turns wire bytes back into
// a Go value. Registration is additive; the registry refuses to overwrite
// an OID that is already bound.
package pgtype

import (
	"fmt"
	"sync"
)

// OIDs for every type this registry knows how to serialize and deserialize.
const (
	BoolOID        = 16
	ByteaOID       = 17
	Int8OID        = 20
	Int2OID        = 21
	Int4OID        = 23
	TextOID        = 25
	OidOID         = 26
	JSONOID        = 114
	MacaddrOID     = 829
	InetOID        = 869
	DateOID        = 1082
	TimeOID        = 1083
	TimestampOID   = 1114
	TimestamptzOID = 1184
	IntervalOID    = 1187
	TimetzOID      = 1266
	NameOID        = 19
	CidrOID        = 650
	Float4OID      = 700
	Float8OID      = 701
	UUIDOID        = 2950
	JSONBOID       = 3802
)

// Field is the context a Codec sees on either side of the wire. On
// Deserialize, Payload holds the column's raw bytes (nil means SQL NULL). On
// Serialize, Payload is unused. GetParam looks up a server run-time
// parameter (e.g. "TimeZone") by name; it returns ok=false if the parameter
// was never reported.
type Field struct {
	DataTypeOID  uint32
	DataTypeSize int16
	TypeModifier int32
	Format       int16
	Payload      []byte
	GetParam     func(name string) (string, bool)
}

// Codec serializes and deserializes the binary wire format for one
// PostgreSQL type. Implementations must not retain a reference to the
// Payload slice passed to Deserialize.
type Codec interface {
	Serialize(value any, field *Field) ([]byte, error)
	Deserialize(field *Field) (any, error)
}

// TypeMismatchError is returned by Serialize when value cannot satisfy the
// codec's wire layout.
type TypeMismatchError struct {
	OID   uint32
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("pgtype: cannot serialize %T as OID %d", e.Value, e.OID)
}

// LengthMismatchError is returned by Deserialize when the payload's length
// does not match the type's fixed wire length.
type LengthMismatchError struct {
	OID      uint32
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("pgtype: OID %d expects a payload of %d bytes, got %d", e.OID, e.Expected, e.Actual)
}

// UnknownOIDError is returned when no codec is registered for an OID.
type UnknownOIDError struct {
	OID uint32
}

func (e *UnknownOIDError) Error() string {
	return fmt.Sprintf("pgtype: no codec registered for OID %d", e.OID)
}

// DuplicateOIDError is returned by Register when a codec is already bound
// to the OID.
type DuplicateOIDError struct {
	OID uint32
}

func (e *DuplicateOIDError) Error() string {
	return fmt.Sprintf("pgtype: a codec is already registered for OID %d", e.OID)
}

// Registry is a process-wide, read-heavy map from type OID to Codec. The
// zero Registry is empty; use NewRegistry or the package-level Default.
type Registry struct {
	mu     sync.RWMutex
	codecs map[uint32]Codec
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[uint32]Codec, 32)}
}

// Register binds codec to oid. It fails if oid is already bound.
func (r *Registry) Register(oid uint32, codec Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.codecs[oid]; ok {
		return &DuplicateOIDError{OID: oid}
	}
	r.codecs[oid] = codec
	return nil
}

// Lookup returns the codec bound to oid, if any.
func (r *Registry) Lookup(oid uint32) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[oid]
	return c, ok
}

// Serialize encodes value for oid using the registered codec.
func (r *Registry) Serialize(oid uint32, value any, field *Field) ([]byte, error) {
	codec, ok := r.Lookup(oid)
	if !ok {
		return nil, &UnknownOIDError{OID: oid}
	}
	if field == nil {
		field = &Field{DataTypeOID: oid, Format: 1}
	}
	return codec.Serialize(value, field)
}

// Deserialize decodes field.Payload using the codec registered for
// field.DataTypeOID.
func (r *Registry) Deserialize(field *Field) (any, error) {
	codec, ok := r.Lookup(field.DataTypeOID)
	if !ok {
		return nil, &UnknownOIDError{OID: field.DataTypeOID}
	}
	return codec.Deserialize(field)
}

// Default is the process-wide registry populated at init time with every
// codec this package implements. Connections consult Default unless
// constructed with an explicit Registry.
var Default = NewRegistry()

func mustRegister(oid uint32, codec Codec) {
	if err := Default.Register(oid, codec); err != nil {
		panic(err)
	}
}
