package dotfmt

import (
	"errors"
	"testing"
)

func TestParseLineDirectives(t *testing.T) {
	cases := map[string]Directive{
		".paragraph": {Kind: KindParagraph},
		".fill":      {Kind: KindFill},
		".nofill":    {Kind: KindNoFill},
		".regular":   {Kind: KindRegular},
		".bold":      {Kind: KindBold},
		".italics":   {Kind: KindItalic},
		".italic":    {Kind: KindItalic},
		".large":     {Kind: KindLarge},
		".normal":    {Kind: KindNormal},
		".indent 4":  {Kind: KindIndent, N: 4},
		".indent 0":  {Kind: KindIndent},
		".bold   ":   {Kind: KindBold},
		".indent\t7": {Kind: KindIndent, N: 7},
	}
	for in, want := range cases {
		got, err := ParseLine(in)
		if err != nil {
			t.Fatalf("ParseLine(%q): %v", in, err)
		}
		if got.IsText {
			t.Fatalf("ParseLine(%q) classified as text", in)
		}
		if got.Directive != want {
			t.Fatalf("ParseLine(%q) = %+v, want %+v", in, got.Directive, want)
		}
	}
}

func TestParseLineText(t *testing.T) {
	for _, in := range []string{"", "Hello", " .bold", "a.b", "\t.fill"} {
		got, err := ParseLine(in)
		if err != nil {
			t.Fatalf("ParseLine(%q): %v", in, err)
		}
		if !got.IsText || got.Text != in {
			t.Fatalf("ParseLine(%q) = %+v, want verbatim text", in, got)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
		name string
		arg  string
	}{
		{".indent", ErrMissingArgument, "indent", ""},
		{".indent abc", ErrInvalidArgument, "indent", "abc"},
		{".indent -1", ErrInvalidArgument, "indent", "-1"},
		{".indent 1 2", ErrInvalidArgument, "indent", "1 2"},
		{".bold now", ErrInvalidArgument, "bold", "now"},
		{".Bold", ErrUnknownDirective, "Bold", ""},
		{".center", ErrUnknownDirective, "center", ""},
		{".", ErrUnknownDirective, "", ""},
		{". bold", ErrUnknownDirective, "", ""},
	}
	for _, tc := range cases {
		_, err := ParseLine(tc.in)
		if !errors.Is(err, tc.want) {
			t.Fatalf("ParseLine(%q) error = %v, want %v", tc.in, err, tc.want)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("ParseLine(%q) error %T is not *ParseError", tc.in, err)
		}
		if pe.Name != tc.name || pe.Arg != tc.arg {
			t.Fatalf("ParseLine(%q) = name %q arg %q, want %q %q", tc.in, pe.Name, pe.Arg, tc.name, tc.arg)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Line: 3, Name: "indent", Arg: "abc", Err: ErrInvalidArgument}
	if got, want := err.Error(), `line 3: .indent: invalid argument "abc"`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	err = &ParseError{Name: "indent", Err: ErrMissingArgument}
	if got, want := err.Error(), ".indent: missing argument"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestKindFlushes(t *testing.T) {
	flushing := map[Kind]bool{
		KindParagraph: true,
		KindFill:      true,
		KindNoFill:    true,
		KindIndent:    true,
		KindRegular:   false,
		KindBold:      false,
		KindItalic:    false,
		KindLarge:     false,
		KindNormal:    false,
	}
	for k, want := range flushing {
		if k.Flushes() != want {
			t.Fatalf("%v.Flushes() = %v, want %v", k, k.Flushes(), want)
		}
	}
	if got := (Directive{Kind: KindIndent, N: 3}).String(); got != ".indent 3" {
		t.Fatalf("Directive.String() = %q", got)
	}
	if got := KindItalic.String(); got != "italics" {
		t.Fatalf("KindItalic.String() = %q", got)
	}
}
