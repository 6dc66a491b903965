package dotfmt

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPParseRequest configures HTTPParse.
type HTTPParseRequest struct {
	URL     string
	Client  *http.Client
	Sink    Sink
	Options []Option
}

// FetchURL issues a GET for an http(s) URL and returns the body of a 2xx
// response. The caller closes it.
func FetchURL(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	if url == "" {
		return nil, fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch: unsupported scheme %q", req.URL.Scheme)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: status %s", url, resp.Status)
	}
	return resp.Body, nil
}

// HTTPParse fetches directive text over HTTP(S) and parses it into the sink.
func HTTPParse(ctx context.Context, req HTTPParseRequest) error {
	if req.Sink == nil {
		return fmt.Errorf("parse http: Sink is nil")
	}
	body, err := FetchURL(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("parse http: %w", err)
	}
	defer body.Close()
	return Parse(ParseRequest{
		Reader:  body,
		Sink:    req.Sink,
		Options: req.Options,
	})
}
