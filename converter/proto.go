package converter

import (
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/proto"

	"github.com/wudayu/retrofit/body"
)

// ProtoMime is the MIME type stamped on protobuf payloads.
const ProtoMime = "application/x-protobuf"

// Proto converts between protobuf wire bodies and generated message types.
// Protobuf is a binary format, so no charset handling applies.
type Proto struct{}

func NewProto() *Proto { return &Proto{} }

// FromBody decodes a protobuf payload into v, which must be a
// proto.Message. Inputs declaring a MIME type other than
// application/x-protobuf are rejected up front: decoding a text body as
// protobuf yields garbage, not an error.
func (c *Proto) FromBody(input body.Input, v any) error {
	msg, ok := v.(proto.Message)
	if !ok {
		return &ConversionError{Cause: fmt.Errorf("target %T is not a proto.Message", v)}
	}
	if mt := input.MimeType(); mt != "" && !strings.HasPrefix(mt, ProtoMime) {
		return &ConversionError{Cause: fmt.Errorf("expected %s body, got %q", ProtoMime, mt)}
	}

	stream, err := input.In()
	if err != nil {
		return &ConversionError{Cause: err}
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return &ConversionError{Cause: err}
	}
	if err := proto.Unmarshal(data, msg); err != nil {
		return &ConversionError{Cause: err}
	}
	return nil
}

func (c *Proto) ToBody(v any) (body.Output, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, &ConversionError{Cause: fmt.Errorf("value %T is not a proto.Message", v)}
	}
	data, err := proto.Marshal(msg)
	if err != nil {
		return nil, &ConversionError{Cause: err}
	}
	return body.NewBytes(ProtoMime, data), nil
}
