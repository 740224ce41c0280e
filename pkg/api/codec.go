// Package api defines the wire messages of the splitledger.v1 services.
//
// Messages are plain Go structs carried over the Connect protocol with a JSON
// codec, so browsers and curl can call procedures with
// Content-Type: application/json.
package api

import (
	"encoding/json"
	"fmt"
)

// CodecName is registered under Connect's "json" codec name.
const CodecName = "json"

// JSONCodec marshals messages with encoding/json.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return CodecName }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero
// message.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
