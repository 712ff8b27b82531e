// Package export encodes analysis payloads for the wire: JSON, optionally
// snappy-compressed. A one-byte frame tag in front of the body records
// which encoding was used, so readers never have to guess.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/golang/snappy"
)

// Encoding identifies the frame body encoding
type Encoding uint8

const (
	EncodingJSON   Encoding = 0
	EncodingSnappy Encoding = 1
)

// Codec frames and unframes export payloads
type Codec struct {
	compress bool
}

// NewCodec creates a codec. With compress set, Encode emits snappy frames.
func NewCodec(compress bool) *Codec {
	return &Codec{compress: compress}
}

// Encode marshals v to JSON and wraps it in a tagged frame
func (c *Codec) Encode(v interface{}) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	if !c.compress {
		frame := make([]byte, 0, len(body)+1)
		frame = append(frame, byte(EncodingJSON))
		return append(frame, body...), nil
	}

	compressed := snappy.Encode(nil, body)
	frame := make([]byte, 0, len(compressed)+1)
	frame = append(frame, byte(EncodingSnappy))
	return append(frame, compressed...), nil
}

// Decode unwraps a tagged frame and unmarshals the body into v. Decode
// handles both encodings regardless of how the codec was constructed.
func (c *Codec) Decode(frame []byte, v interface{}) error {
	if len(frame) < 1 {
		return fmt.Errorf("decode: empty frame")
	}

	body := frame[1:]
	switch Encoding(frame[0]) {
	case EncodingJSON:
	case EncodingSnappy:
		decompressed, err := snappy.Decode(nil, body)
		if err != nil {
			return fmt.Errorf("decode: snappy: %w", err)
		}
		body = decompressed
	default:
		return fmt.Errorf("decode: unknown encoding tag %d", frame[0])
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
