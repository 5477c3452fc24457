// Package client dispatches typed calls through a converter and transport.
//
// Call pipeline:
//
//	args ──ToBody──→ Request ──middleware──→ transport ──→ Response ──FromBody──→ reply
//
// The client owns none of the conversion or wire logic itself; it glues
// converter and transport together and maps HTTP statuses to errors.
// Retries, endpoint discovery, and caching are deliberately absent —
// callers that need them wrap the client.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wudayu/retrofit/body"
	"github.com/wudayu/retrofit/converter"
	"github.com/wudayu/retrofit/middleware"
	"github.com/wudayu/retrofit/transport"
)

// StatusError reports a non-2xx response. The response body is kept
// available so callers can decode a structured error payload out of it.
type StatusError struct {
	StatusCode int
	Body       body.Input
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Client executes typed calls against a single base URL.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL string
	conv    converter.Converter
	handler middleware.Handler
}

// Option configures a Client at construction time.
type Option func(*settings)

type settings struct {
	conv        converter.Converter
	rt          transport.RoundTripper
	middlewares []middleware.Middleware
}

// WithConverter sets the converter used for request and response bodies.
// The default is a JSON converter over the Sonic engine.
func WithConverter(conv converter.Converter) Option {
	return func(s *settings) { s.conv = conv }
}

// WithRoundTripper sets the transport. The default wraps
// http.DefaultClient.
func WithRoundTripper(rt transport.RoundTripper) Option {
	return func(s *settings) { s.rt = rt }
}

// WithMiddleware appends middlewares to the execution chain, outermost
// first.
func WithMiddleware(m ...middleware.Middleware) Option {
	return func(s *settings) { s.middlewares = append(s.middlewares, m...) }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.conv == nil {
		conv, err := converter.NewJSON(nil)
		if err != nil {
			return nil, err
		}
		s.conv = conv
	}
	if s.rt == nil {
		s.rt = &transport.HTTP{}
	}
	handler := middleware.Handler(s.rt.RoundTrip)
	if len(s.middlewares) > 0 {
		handler = middleware.Chain(s.middlewares...)(handler)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		conv:    s.conv,
		handler: handler,
	}, nil
}

// Call executes one exchange. args is encoded as the request body when
// non-nil; reply, when a non-nil pointer, is filled from the response
// body. A nil reply still drains and releases the response stream.
func (c *Client) Call(ctx context.Context, method, path string, args, reply any) error {
	var out body.Output
	if args != nil {
		var err error
		if out, err = c.conv.ToBody(args); err != nil {
			return err
		}
	}

	req := &transport.Request{
		Method: method,
		URL:    c.baseURL + "/" + strings.TrimLeft(path, "/"),
		Header: http.Header{},
		Body:   out,
	}
	resp, err := c.handler(ctx, req)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: resp.Body}
	}
	if reply == nil {
		discard(resp.Body)
		return nil
	}
	return c.conv.FromBody(resp.Body, reply)
}

// discard releases a response stream nobody will decode.
func discard(in body.Input) {
	rc, err := in.In()
	if err != nil {
		return
	}
	_, _ = io.Copy(io.Discard, rc)
	_ = rc.Close()
}
