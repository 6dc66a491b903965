package dotfmt

import "slices"

// FillIndent is the indent, in units, that .fill forces on the new paragraph.
const FillIndent = 10

// Style is the ephemeral style applied to the next text run only.
type Style struct {
	Bold   bool
	Italic bool
	Large  bool
}

// IsZero reports whether no style flag is set.
func (s Style) IsZero() bool { return s == Style{} }

// Layout is the persistent paragraph layout.
type Layout struct {
	// Indent is the left padding in units; renderers choose the unit size.
	Indent int
	// Fill selects justified layout.
	Fill bool
}

// Run is a span of literal text bound to the style active when it was read.
type Run struct {
	Text string
	Style
}

// Paragraph is an ordered run sequence with its layout.
type Paragraph struct {
	Runs []Run
	Layout
}

// Empty reports whether the paragraph holds no runs.
func (p Paragraph) Empty() bool { return len(p.Runs) == 0 }

// Text concatenates run text with single spaces between non-empty runs.
func (p Paragraph) Text() string {
	n := 0
	for _, r := range p.Runs {
		n += len(r.Text) + 1
	}
	buf := make([]byte, 0, n)
	for _, r := range p.Runs {
		if r.Text == "" {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

func (p Paragraph) clone() Paragraph {
	p.Runs = slices.Clone(p.Runs)
	return p
}
