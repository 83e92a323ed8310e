// Package testclient issues requests against an http.Handler in-process,
// without binding a network port.
package testclient

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type Client struct {
	t       testing.TB
	handler http.Handler
	closed  bool
}

// New binds a client to h for the lifetime of t. The client is closed
// when t and its subtests complete.
func New(t testing.TB, h http.Handler) *Client {
	t.Helper()

	c := &Client{t: t, handler: h}
	t.Cleanup(func() {
		c.closed = true
	})
	return c
}

func (c *Client) Get(path string) *Response {
	c.t.Helper()
	return c.Do(httptest.NewRequest(http.MethodGet, path, nil))
}

// Do serves req synchronously. Panics raised by the handler reach the caller.
// Using a client after its test completed panics, as the owning test can no
// longer record a failure.
func (c *Client) Do(req *http.Request) *Response {
	c.t.Helper()
	if c.closed {
		panic(fmt.Sprintf("testclient: %s %s on closed client", req.Method, req.URL.RequestURI()))
	}

	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)

	res := rr.Result()
	defer func() {
		require.NoError(c.t, res.Body.Close())
	}()

	body, err := io.ReadAll(res.Body)
	require.NoError(c.t, err)

	// Servers never send a body in reply to HEAD.
	if req.Method == http.MethodHead {
		body = nil
	}

	return &Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       body,
	}
}

func (c *Client) Closed() bool {
	return c.closed
}
