// Package plotv1connect wires the plot.v1 messages into Connect handlers and clients.
package plotv1connect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec encodes plot.v1 messages as JSON. It registers under the "json" name so
// both the Connect protocol ("application/json") and plain HTTP clients can call
// the API with curl.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}
