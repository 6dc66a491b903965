package dotfmt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseRejectsInvalidUTF8(t *testing.T) {
	_, err := ParseDocument(bytes.NewReader([]byte{0xff, 0xfe, 0xfd}))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestParseRejectsBinary(t *testing.T) {
	if _, err := ParseDocument(bytes.NewReader(append([]byte("hello"), 0x00))); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	noisy := strings.Repeat("ab\x01", 40)
	if _, err := ParseDocument(strings.NewReader(noisy)); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput for control-heavy input, got %v", err)
	}
}

func TestParseAcceptsText(t *testing.T) {
	if _, err := ParseDocument(strings.NewReader(".bold\nH\u00e9llo\tw\u00f6rld\r\n")); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidatorCountsAcrossLines(t *testing.T) {
	var v validator
	line := strings.Repeat("a", 40) + "\x01"
	if _, err := v.cleanLine(line); err != nil {
		t.Fatalf("first line: %v", err)
	}
	if _, err := v.cleanLine(line); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput once the sample is large enough, got %v", err)
	}
	v.reset()
	if _, err := v.cleanLine(line); err != nil {
		t.Fatalf("after reset: %v", err)
	}
}

func TestCleanLineDropsControlRunes(t *testing.T) {
	var v validator
	got, err := v.cleanLine("a\x07b\tc")
	if err != nil {
		t.Fatalf("cleanLine: %v", err)
	}
	if got != "ab\tc" {
		t.Fatalf("unexpected cleaned line %q", got)
	}
	if _, err := v.cleanLine("bad\xffbyte"); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestTrimLineEnd(t *testing.T) {
	cases := map[string]string{
		"text\r\n": "text",
		"text\n":   "text",
		"text":     "text",
		"\r\n":     "",
	}
	for in, want := range cases {
		if got := trimLineEnd(in); got != want {
			t.Fatalf("trimLineEnd(%q) = %q, want %q", in, got, want)
		}
	}
	if got := trimBOM("\ufeff.bold"); got != ".bold" {
		t.Fatalf("trimBOM = %q", got)
	}
}
