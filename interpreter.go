package dotfmt

import (
	"fmt"
	"log/slog"
)

// State is the complete interpreter state between two lines.
type State struct {
	Style  Style
	Layout Layout
	b      builder
}

// NewState returns the start state: no pending style, default layout and an
// empty open paragraph.
func NewState() State {
	return State{b: newBuilder(Layout{})}
}

// Open returns a copy of the paragraph being assembled.
func (s State) Open() Paragraph {
	return s.b.open.clone()
}

// Step processes one input line. It returns the next state and, when the line
// sealed the open paragraph, that paragraph. On error the returned state is s.
func Step(s State, line string) (State, *Paragraph, error) {
	l, err := ParseLine(line)
	if err != nil {
		return s, nil, err
	}
	if l.IsText {
		s.b = s.b.append(Run{Text: l.Text, Style: s.Style})
		s.Style = Style{}
		return s, nil, nil
	}
	return apply(s, l.Directive)
}

// apply performs one directive transition. The switch must stay exhaustive
// over Kind.
func apply(s State, d Directive) (State, *Paragraph, error) {
	switch d.Kind {
	case KindBold:
		s.Style.Bold = true
		return s, nil, nil
	case KindItalic:
		s.Style.Italic = true
		return s, nil, nil
	case KindLarge:
		s.Style.Large = true
		return s, nil, nil
	case KindRegular:
		s.Style = Style{}
		return s, nil, nil
	case KindNormal:
		s.Style.Large = false
		return s, nil, nil
	case KindParagraph:
		s.Layout = Layout{}
	case KindFill:
		s.Layout = Layout{Indent: FillIndent, Fill: true}
	case KindNoFill:
		s.Layout.Fill = false
	case KindIndent:
		if d.N < 0 {
			return s, nil, &ParseError{Name: d.Kind.String(), Arg: fmt.Sprint(d.N), Err: ErrInvalidArgument}
		}
		s.Layout.Indent = d.N
	case kindInvalid:
		return s, nil, &ParseError{Err: ErrUnknownDirective}
	default:
		panic(fmt.Sprintf("dotfmt: unhandled directive %v", d.Kind))
	}
	return flush(s)
}

func flush(s State) (State, *Paragraph, error) {
	sealed := s.b.flush()
	s.b = s.b.reopen(s.Layout)
	return s, &sealed, nil
}

// Finish performs the end-of-input flush and returns the last paragraph.
func Finish(s State) Paragraph {
	return s.b.flush()
}

// Policy selects how unknown directives are treated.
type Policy uint8

const (
	// UnknownError reports unknown directives as parse errors.
	UnknownError Policy = iota
	// UnknownIgnore treats unknown directives as no-ops. They are still
	// recorded as diagnostics.
	UnknownIgnore
)

// Interpreter drives Step over a line stream and hands sealed paragraphs to a
// Sink.
type Interpreter struct {
	sink        Sink
	cfg         parseConfig
	state       State
	line        int
	diagnostics []*ParseError
	closed      bool
}

// NewInterpreter returns an interpreter writing to sink.
func NewInterpreter(sink Sink, opts ...Option) *Interpreter {
	return &Interpreter{
		sink:  sink,
		cfg:   newParseConfig(opts),
		state: NewState(),
	}
}

// Feed processes the next line. A returned *ParseError aborts only in strict
// mode; lenient interpreters record it and continue.
func (in *Interpreter) Feed(line string) error {
	if in.closed {
		return ErrDocumentSealed
	}
	in.line++
	next, sealed, err := Step(in.state, line)
	if err != nil {
		return in.reject(err)
	}
	in.state = next
	if sealed != nil {
		if err := in.sink.WriteParagraph(*sealed); err != nil {
			return fmt.Errorf("line %d: sink: %w", in.line, err)
		}
	}
	return nil
}

func (in *Interpreter) reject(err error) error {
	pe, ok := err.(*ParseError)
	if !ok {
		return err
	}
	pe.Line = in.line
	in.diagnostics = append(in.diagnostics, pe)
	if in.cfg.onError != nil {
		in.cfg.onError(pe)
	}
	if in.cfg.unknown == UnknownIgnore && pe.Err == ErrUnknownDirective {
		in.cfg.logger.Warn("ignoring unknown directive", slog.Int("line", pe.Line), slog.String("directive", pe.Name))
		return nil
	}
	if in.cfg.strict {
		return pe
	}
	in.cfg.logger.Warn("skipping directive", slog.Int("line", pe.Line), slog.String("error", pe.Error()))
	return nil
}

// Close performs the terminal flush and signals completion to the sink.
func (in *Interpreter) Close() error {
	if in.closed {
		return nil
	}
	in.closed = true
	if err := in.sink.WriteParagraph(Finish(in.state)); err != nil {
		return fmt.Errorf("finish: sink: %w", err)
	}
	if err := in.sink.Finish(); err != nil {
		return fmt.Errorf("finish: %w", err)
	}
	in.cfg.logger.Debug("document complete", slog.Int("lines", in.line), slog.Int("skipped", len(in.diagnostics)))
	return nil
}

// Line returns the number of lines fed so far.
func (in *Interpreter) Line() int { return in.line }

// Diagnostics returns the parse errors seen so far, including skipped lines.
func (in *Interpreter) Diagnostics() []*ParseError {
	out := make([]*ParseError, len(in.diagnostics))
	copy(out, in.diagnostics)
	return out
}
