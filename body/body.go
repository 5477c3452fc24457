// Package body defines the boundary value types exchanged between the
// converter layer and the transport layer.
//
// An Input pairs a received byte stream with the MIME type the transport
// reported for it. An Output pairs an outgoing byte payload with the MIME
// type and length the transport must put on the wire. Converters consume
// Inputs and produce Outputs; they never touch the wire themselves.
package body

import "io"

// Input is a byte payload received from the wire.
//
// The transport layer builds one per response. Whoever reads the stream
// (normally a converter) owns it and must close it.
type Input interface {
	// MimeType returns the MIME type the transport reported for this
	// payload, or "" when none was reported.
	MimeType() string

	// In opens the underlying byte stream.
	In() (io.ReadCloser, error)
}

// Output is a byte payload ready to be sent over the wire.
//
// Values are immutable once constructed. Ownership transfers to the
// transport layer, which writes the bytes out.
type Output interface {
	// FileName returns the name attached to the payload, or "" when not
	// applicable (JSON bodies have none).
	FileName() string

	// MimeType returns the full MIME type for the payload, including the
	// charset parameter when one applies.
	MimeType() string

	// Length returns the exact number of bytes WriteTo will produce.
	Length() int64

	// WriteTo writes the payload to w.
	WriteTo(w io.Writer) error
}
