package converter

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/wudayu/retrofit/body"
)

// MessagePackMime is the MIME type stamped on MessagePack payloads.
const MessagePackMime = "application/msgpack"

// MessagePack converts between MessagePack wire bodies and typed Go
// values, for callers trading JSON's readability for a smaller binary
// payload.
type MessagePack struct{}

func NewMessagePack() *MessagePack { return &MessagePack{} }

func (c *MessagePack) FromBody(input body.Input, v any) error {
	stream, err := input.In()
	if err != nil {
		return &ConversionError{Cause: err}
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return &ConversionError{Cause: err}
	}
	if err := msgpack.Unmarshal(data, v); err != nil {
		return &ConversionError{Cause: err}
	}
	return nil
}

func (c *MessagePack) ToBody(v any) (body.Output, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, &ConversionError{Cause: err}
	}
	return body.NewBytes(MessagePackMime, data), nil
}
