package dotfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Prefix marks a directive line.
const Prefix = '.'

var (
	// ErrUnknownDirective reports a prefixed token that names no directive.
	ErrUnknownDirective = errors.New("unknown directive")
	// ErrMissingArgument reports a directive that requires an argument but has none.
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidArgument reports a malformed or unexpected directive argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Kind identifies a directive.
type Kind uint8

const (
	kindInvalid Kind = iota
	// KindParagraph starts a new plain paragraph.
	KindParagraph
	// KindFill switches to justified layout with the fixed fill padding.
	KindFill
	// KindNoFill switches back to unjustified layout.
	KindNoFill
	// KindRegular clears the pending run style.
	KindRegular
	// KindBold makes the next run bold.
	KindBold
	// KindItalic makes the next run italic.
	KindItalic
	// KindLarge makes the next run large.
	KindLarge
	// KindNormal resets the pending run size.
	KindNormal
	// KindIndent sets the paragraph indent in units.
	KindIndent
)

var kindNames = [...]string{
	kindInvalid:   "",
	KindParagraph: "paragraph",
	KindFill:      "fill",
	KindNoFill:    "nofill",
	KindRegular:   "regular",
	KindBold:      "bold",
	KindItalic:    "italics",
	KindLarge:     "large",
	KindNormal:    "normal",
	KindIndent:    "indent",
}

var kindsByName = map[string]Kind{
	"paragraph": KindParagraph,
	"fill":      KindFill,
	"nofill":    KindNoFill,
	"regular":   KindRegular,
	"bold":      KindBold,
	"italics":   KindItalic,
	"italic":    KindItalic,
	"large":     KindLarge,
	"normal":    KindNormal,
	"indent":    KindIndent,
}

// String returns the directive name without the prefix.
func (k Kind) String() string {
	if int(k) < len(kindNames) && k != kindInvalid {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Flushes reports whether the directive seals the open paragraph.
func (k Kind) Flushes() bool {
	switch k {
	case KindParagraph, KindFill, KindNoFill, KindIndent:
		return true
	default:
		return false
	}
}

// Directive is a parsed directive line. N is only meaningful for KindIndent.
type Directive struct {
	Kind Kind
	N    int
}

func (d Directive) String() string {
	if d.Kind == KindIndent {
		return fmt.Sprintf("%c%s %d", Prefix, d.Kind, d.N)
	}
	return string(Prefix) + d.Kind.String()
}

// Line is one classified input line: either literal text or a directive.
type Line struct {
	Text      string
	Directive Directive
	IsText    bool
}

// ParseError describes a directive line that could not be parsed.
type ParseError struct {
	// Line is the 1-based input line number, or 0 when unknown.
	Line int
	Name string
	Arg  string
	Err  error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteByte(Prefix)
	b.WriteString(e.Name)
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Arg != "" {
		fmt.Fprintf(&b, " %q", e.Arg)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseLine classifies s. Text lines are returned verbatim; directive lines
// are tokenized on whitespace and validated.
func ParseLine(s string) (Line, error) {
	if len(s) == 0 || s[0] != Prefix {
		return Line{Text: s, IsText: true}, nil
	}
	fields := strings.Fields(s[1:])
	name := ""
	if len(fields) > 0 && !strings.HasPrefix(s[1:], " ") && !strings.HasPrefix(s[1:], "\t") {
		name = fields[0]
		fields = fields[1:]
	}
	kind, ok := kindsByName[name]
	if !ok {
		return Line{}, &ParseError{Name: name, Err: ErrUnknownDirective}
	}
	d := Directive{Kind: kind}
	if kind != KindIndent {
		if len(fields) > 0 {
			return Line{}, &ParseError{Name: name, Arg: strings.Join(fields, " "), Err: ErrInvalidArgument}
		}
		return Line{Directive: d}, nil
	}
	switch len(fields) {
	case 0:
		return Line{}, &ParseError{Name: name, Err: ErrMissingArgument}
	case 1:
	default:
		return Line{}, &ParseError{Name: name, Arg: strings.Join(fields, " "), Err: ErrInvalidArgument}
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return Line{}, &ParseError{Name: name, Arg: fields[0], Err: ErrInvalidArgument}
	}
	d.N = n
	return Line{Directive: d}, nil
}
