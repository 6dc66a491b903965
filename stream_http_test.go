package dotfmt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(".bold\nHello\n.paragraph\nWorld\n"))
	}))
	defer srv.Close()

	doc := &Document{}
	if err := HTTPParse(context.Background(), HTTPParseRequest{URL: srv.URL, Client: srv.Client(), Sink: doc}); err != nil {
		t.Fatalf("http parse: %v", err)
	}
	want := []Paragraph{
		{Runs: []Run{{Text: "Hello", Style: Style{Bold: true}}}},
		{Runs: []Run{{Text: "World"}}},
	}
	diffParagraphs(t, want, doc.Paragraphs())
}

func TestHTTPParseStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()
	doc := &Document{}
	if err := HTTPParse(context.Background(), HTTPParseRequest{URL: srv.URL, Sink: doc}); err == nil {
		t.Fatalf("expected status error")
	}
	if doc.Complete() {
		t.Fatalf("sink must not be finished on failure")
	}
}

func TestHTTPParseValidation(t *testing.T) {
	if err := HTTPParse(context.Background(), HTTPParseRequest{Sink: &Document{}}); err == nil {
		t.Fatalf("expected error for empty URL")
	}
	if err := HTTPParse(context.Background(), HTTPParseRequest{URL: "http://example.invalid"}); err == nil {
		t.Fatalf("expected error for nil sink")
	}
	if err := HTTPParse(context.Background(), HTTPParseRequest{URL: "ftp://example.invalid/x", Sink: &Document{}}); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("body"))
	}))
	defer srv.Close()

	body, err := FetchURL(context.Background(), srv.Client(), srv.URL+"/doc.txt")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	data, err := io.ReadAll(body)
	_ = body.Close()
	if err != nil || string(data) != "body" {
		t.Fatalf("unexpected body %q (%v)", data, err)
	}
	if _, err := FetchURL(context.Background(), nil, srv.URL+"/missing"); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
	if _, err := FetchURL(context.Background(), nil, "file:///etc/passwd"); err == nil {
		t.Fatalf("expected unsupported scheme error")
	}
}
