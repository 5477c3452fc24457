// Package converter translates between wire-format bodies and typed Go
// values.
//
// A Converter is a pure, stateless transform: the client layer calls
// ToBody before transmitting a request and FromBody after receiving a
// response. Converters perform no network I/O, no retries, and no routing;
// all of that lives in the transport and middleware layers.
package converter

import (
	"fmt"

	"github.com/wudayu/retrofit/body"
)

// Engine is the serialization engine a converter delegates structural
// mapping to: matching JSON keys (or msgpack fields, ...) to struct
// members by name, through nested objects, slices, and primitives.
//
// bytedance/sonic's sonic.API satisfies Engine directly; Std adapts
// encoding/json.
type Engine interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Converter converts between wire bodies and in-memory values.
type Converter interface {
	// FromBody decodes input into v, which must be a non-nil pointer.
	FromBody(input body.Input, v any) error

	// ToBody encodes v into an outgoing payload.
	ToBody(v any) (body.Output, error)
}

// ConversionError reports a failed decode or encode. It always wraps the
// underlying I/O or parse error, which errors.Unwrap exposes for
// diagnostics. Callers treat it as a failed call, not a broken client.
type ConversionError struct {
	Cause error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed: %v", e.Cause)
}

func (e *ConversionError) Unwrap() error { return e.Cause }
