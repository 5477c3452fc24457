package body

import (
	"bytes"
	"io"
)

// Bytes is an immutable in-memory payload. It implements both Input and
// Output, so an encoded request body can be fed straight back through a
// converter's decode path.
type Bytes struct {
	mimeType string
	data     []byte
}

// NewBytes creates a payload over data. The slice is not copied; callers
// must not mutate it afterwards.
func NewBytes(mimeType string, data []byte) *Bytes {
	return &Bytes{mimeType: mimeType, data: data}
}

func (b *Bytes) MimeType() string { return b.mimeType }

func (b *Bytes) FileName() string { return "" }

func (b *Bytes) Length() int64 { return int64(len(b.data)) }

// In returns a fresh reader over the payload. Closing it is a no-op, so a
// Bytes value can be decoded any number of times.
func (b *Bytes) In() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.data)), nil
}

func (b *Bytes) WriteTo(w io.Writer) error {
	_, err := w.Write(b.data)
	return err
}
