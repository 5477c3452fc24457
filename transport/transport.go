// Package transport executes single HTTP exchanges for the client layer.
//
// It owns the hop from a built Request to a Response and nothing else:
// connection pooling, redirects, and TLS belong to the injected
// *http.Client, and everything above the wire (conversion, timeouts,
// rate limiting) belongs to the client and middleware layers.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/wudayu/retrofit/body"
)

// Request describes one outgoing HTTP call.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   body.Output // nil for bodiless requests
}

// Response is the transport-level result of a call. Body.MimeType reports
// the Content-Type header, which is how charset information reaches the
// converter layer.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       body.Input
}

// RoundTripper executes a single request/response exchange.
type RoundTripper interface {
	RoundTrip(ctx context.Context, req *Request) (*Response, error)
}

// HTTP is a RoundTripper over net/http.
type HTTP struct {
	Client *http.Client // nil means http.DefaultClient
}

// RoundTrip sends one request and wraps the raw HTTP response. The
// Content-Type and Content-Length headers are derived from the request
// body's own metadata, never guessed.
func (t *HTTP) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	var payload io.Reader
	if req.Body != nil {
		buf := &bytes.Buffer{}
		if err := req.Body.WriteTo(buf); err != nil {
			return nil, fmt.Errorf("write request body: %w", err)
		}
		payload = buf
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, payload)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", req.Body.MimeType())
		if n := req.Body.Length(); n >= 0 {
			httpReq.ContentLength = n
		}
		if fn := req.Body.FileName(); fn != "" {
			httpReq.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fn))
		}
	}

	httpResp, err := t.client().Do(httpReq)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       newResponseBody(httpResp),
	}, nil
}

func (t *HTTP) client() *http.Client {
	if t.Client == nil {
		return http.DefaultClient
	}
	return t.Client
}

// responseBody adapts an *http.Response into a body.Input. In hands out
// the live response stream, so it can be consumed once; whoever reads it
// closes it.
type responseBody struct {
	mimeType string
	rc       io.ReadCloser
}

func newResponseBody(resp *http.Response) *responseBody {
	return &responseBody{
		mimeType: resp.Header.Get("Content-Type"),
		rc:       resp.Body,
	}
}

func (b *responseBody) MimeType() string { return b.mimeType }

func (b *responseBody) In() (io.ReadCloser, error) { return b.rc, nil }
