package converter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/wudayu/retrofit/body"
)

const (
	defaultMime    = "application/json"
	defaultCharset = "UTF-8"
)

// Sonic is the default serialization engine, bytedance/sonic in its
// stdlib-compatible configuration. Any sonic.API value satisfies Engine,
// so callers can pass their own tuned configuration to NewJSON instead.
var Sonic Engine = sonic.ConfigStd

// Std is a serialization engine backed by encoding/json, for callers who
// want the standard library's exact behavior.
var Std Engine = stdEngine{}

type stdEngine struct{}

func (stdEngine) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (stdEngine) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Option adjusts a JSON converter at construction time.
type Option func(*JSON)

// WithMime overrides the base MIME type stamped on outgoing payloads
// (default "application/json").
func WithMime(mime string) Option {
	return func(c *JSON) { c.mime = mime }
}

// WithCharset overrides the charset used when encoding and when decoding
// inputs that do not declare one (default "UTF-8").
func WithCharset(charset string) Option {
	return func(c *JSON) { c.charset = charset }
}

// JSON converts between JSON wire bodies and typed Go values. It holds no
// mutable state after construction and is safe for concurrent use.
type JSON struct {
	engine  Engine
	mime    string
	charset string
	enc     encoding.Encoding // resolved form of charset; nil means plain UTF-8
}

// NewJSON creates a JSON converter around the supplied engine (Sonic when
// nil). The configured charset name is resolved against the IANA registry
// once, here: an unknown name is a configuration bug and fails
// construction instead of surfacing mid-call.
func NewJSON(engine Engine, opts ...Option) (*JSON, error) {
	c := &JSON{
		engine:  engine,
		mime:    defaultMime,
		charset: defaultCharset,
	}
	if c.engine == nil {
		c.engine = Sonic
	}
	for _, opt := range opts {
		opt(c)
	}
	enc, err := resolveCharset(c.charset)
	if err != nil {
		return nil, err
	}
	c.enc = enc
	return c, nil
}

// FromBody decodes a JSON payload into v, which must be a non-nil pointer.
//
// The effective charset comes from the input's declared MIME type when it
// carries one, falling back to the configured default. The input stream is
// closed before FromBody returns, on every path; close errors carry no
// diagnostic value and are dropped so they never mask a real decode error.
func (c *JSON) FromBody(input body.Input, v any) error {
	charset := c.charset
	enc := c.enc
	if mt := input.MimeType(); mt != "" {
		charset = body.ParseCharset(mt, c.charset)
		if !strings.EqualFold(charset, c.charset) {
			var err error
			if enc, err = resolveCharset(charset); err != nil {
				return &ConversionError{Cause: err}
			}
		}
	}

	stream, err := input.In()
	if err != nil {
		return &ConversionError{Cause: err}
	}
	defer stream.Close()

	var r io.Reader = stream
	if enc != nil {
		// Decoding view: transcodes the declared charset to UTF-8 as the
		// engine reads.
		r = transform.NewReader(stream, enc.NewDecoder())
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return &ConversionError{Cause: err}
	}
	if err := c.engine.Unmarshal(data, v); err != nil {
		return &ConversionError{Cause: err}
	}
	return nil
}

// ToBody encodes v as JSON text in the configured charset. The returned
// payload carries MIME "<mime>; charset=<charset>", the exact encoded byte
// length, and no file name.
func (c *JSON) ToBody(v any) (body.Output, error) {
	data, err := c.engine.Marshal(v)
	if err != nil {
		return nil, &ConversionError{Cause: err}
	}
	if c.enc != nil {
		// Engines emit UTF-8; transcode into the configured charset. Runes
		// the charset cannot represent degrade to substitution bytes.
		data, _, err = transform.Bytes(encoding.ReplaceUnsupported(c.enc.NewEncoder()), data)
		if err != nil {
			return nil, &ConversionError{Cause: err}
		}
	}
	return body.NewBytes(c.mime+"; charset="+c.charset, data), nil
}

// resolveCharset maps an IANA charset name to its encoding. UTF-8, the
// wire default and what every engine already emits, resolves to nil: no
// transcoding needed.
func resolveCharset(name string) (encoding.Encoding, error) {
	if strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		return nil, nil
	}
	enc, err := ianaindex.MIME.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return enc, nil
}
