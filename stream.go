package dotfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const minTerminalColumns = 10

// TerminalRenderer writes paragraphs to a terminal as they are sealed.
// Paragraphs are separated by a blank line; empty paragraphs print nothing.
type TerminalRenderer struct {
	w             io.Writer
	width         int
	indentColumns int
	styles        Styles
	colors        map[Style]*color.Color
	written       int
	finished      bool
}

// NewTerminalRenderer creates a renderer for w. A width of 0 disables
// wrapping and justification.
func NewTerminalRenderer(w io.Writer, width int, th Theme, opts ...RenderOption) *TerminalRenderer {
	cfg := renderConfig{indentColumns: DefaultIndentColumns}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if th == nil {
		th = DefaultTheme()
	}
	if width < 0 {
		width = 0
	}
	return &TerminalRenderer{
		w:             w,
		width:         width,
		indentColumns: cfg.indentColumns,
		styles:        th.Styles(),
		colors:        make(map[Style]*color.Color, 8),
	}
}

// WriteParagraph renders p.
func (t *TerminalRenderer) WriteParagraph(p Paragraph) error {
	if t.finished {
		return ErrDocumentSealed
	}
	words := SplitWords(p, cellWidth)
	if len(words) == 0 {
		return nil
	}
	pad := p.Indent * t.indentColumns
	limit := 0
	if t.width > 0 {
		limit = t.width - pad
		if limit < minTerminalColumns {
			limit = minTerminalColumns
		}
	}
	var body string
	if p.Fill && limit > 0 {
		body = t.justified(words, limit)
	} else {
		body = t.ragged(words, limit)
	}
	if pad > 0 {
		body = indent.String(body, uint(pad))
	}
	var b strings.Builder
	if t.written > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(body)
	b.WriteByte('\n')
	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return fmt.Errorf("terminal: write: %w", err)
	}
	t.written++
	return nil
}

func (t *TerminalRenderer) ragged(words []Word, limit int) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.paint(w))
	}
	if limit <= 0 {
		return b.String()
	}
	return wordwrap.String(b.String(), limit)
}

func (t *TerminalRenderer) justified(words []Word, limit int) string {
	lines := BreakLines(words, float64(limit), cellWidth)
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		var gaps []int
		if !line.Last {
			gaps = justifyCells(len(line.Gaps), int(line.Width), limit)
		}
		for j, w := range line.Words {
			if j > 0 {
				n := 1
				if gaps != nil {
					n = gaps[j-1]
				}
				b.WriteString(strings.Repeat(" ", n))
			}
			b.WriteString(t.paint(w))
		}
	}
	return b.String()
}

func (t *TerminalRenderer) paint(w Word) string {
	c, ok := t.colors[w.Style]
	if !ok {
		attrs := t.styles.attributes(w.Style)
		if len(attrs) > 0 {
			c = color.New(attrs...)
			c.EnableColor()
		}
		t.colors[w.Style] = c
	}
	if c == nil {
		return w.Text
	}
	return c.Sprint(w.Text)
}

// Finish marks the output complete.
func (t *TerminalRenderer) Finish() error {
	t.finished = true
	return nil
}

func cellWidth(s string, _ Style) float64 {
	return float64(ansi.PrintableRuneWidth(s))
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader       io.Reader
	Writer       io.Writer
	Width        int
	Theme        Theme
	Options      []RenderOption
	ParseOptions []Option
}

// Render parses directive text and streams it to a terminal writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	sink := NewTerminalRenderer(req.Writer, req.Width, req.Theme, req.Options...)
	return Parse(ParseRequest{
		Reader:  req.Reader,
		Sink:    sink,
		Options: req.ParseOptions,
	})
}
