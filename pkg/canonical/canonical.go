// Package canonical produces the deterministic byte encoding of a JSON
// payload used for webhook signing. Sender and receiver must sign the same
// bytes, so the encoding is fixed: compact JSON with object keys sorted
// lexicographically at every nesting level.
package canonical

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrTrailingData is returned when the payload contains bytes after the
// first JSON value.
var ErrTrailingData = errors.New("trailing data after JSON value")

// Encode re-serializes payload into its canonical form. Numbers are kept as
// their original literals (no float round-tripping), object keys come out
// sorted, and all insignificant whitespace is removed.
func Encode(payload []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if dec.More() {
		return nil, ErrTrailingData
	}

	// json.Marshal sorts map keys and emits compact output, which is
	// exactly the canonical form.
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return out, nil
}
