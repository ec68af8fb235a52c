package pgtype

import (
	"encoding/json"
	"fmt"
)

// jsonCodec backs both json and jsonb. json carries the document as raw
// UTF-8 bytes; jsonb prefixes it with a version byte that must be 1.
type jsonCodec struct {
	oid      uint32
	isBinary bool
}

// Serialize marshals value as JSON. []byte and json.RawMessage are taken as
// already-encoded documents and copied through unmarshaled, as an
// optimization for callers that did their own encoding; every other value,
// including string, goes through json.Marshal like any other Go value.
func (c jsonCodec) Serialize(value any, field *Field) ([]byte, error) {
	var doc []byte
	switch v := value.(type) {
	case json.RawMessage:
		doc = v
	case []byte:
		doc = v
	default:
		var err error
		doc, err = json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("pgtype: marshal json: %w", err)
		}
	}

	if !c.isBinary {
		return doc, nil
	}

	buf := make([]byte, 0, len(doc)+1)
	buf = append(buf, 1)
	buf = append(buf, doc...)
	return buf, nil
}

// Deserialize unmarshals the payload into an any (the same tree of
// map[string]any/[]any/float64/string/bool/nil encoding/json produces for an
// unconstrained target).
func (c jsonCodec) Deserialize(field *Field) (any, error) {
	if field.Payload == nil {
		return nil, nil
	}
	src := field.Payload

	if c.isBinary {
		if len(src) < 1 {
			return nil, fmt.Errorf("pgtype: jsonb payload too short")
		}
		if src[0] != 1 {
			return nil, fmt.Errorf("pgtype: unknown jsonb version number %d", src[0])
		}
		src = src[1:]
	}

	var dst any
	if err := json.Unmarshal(src, &dst); err != nil {
		return nil, fmt.Errorf("pgtype: unmarshal json: %w", err)
	}
	return dst, nil
}

func init() {
	mustRegister(JSONOID, jsonCodec{oid: JSONOID, isBinary: false})
	mustRegister(JSONBOID, jsonCodec{oid: JSONBOID, isBinary: true})
}
