package dotfmt

import "strings"

// Word is a whitespace-free fragment of a run with its measured width.
type Word struct {
	Text  string
	Style Style
	Width float64
}

// LineBox is one laid-out line of a paragraph.
type LineBox struct {
	Words []Word
	// Gaps holds the space width after each word but the last.
	Gaps []float64
	// Width is the natural width, words plus single spaces.
	Width float64
	Last  bool
}

// Measurer reports the rendered width of text in a style.
type Measurer func(text string, st Style) float64

// SplitWords breaks the paragraph runs into measured words.
func SplitWords(p Paragraph, measure Measurer) []Word {
	var words []Word
	for _, r := range p.Runs {
		for _, f := range strings.Fields(r.Text) {
			words = append(words, Word{Text: f, Style: r.Style, Width: measure(f, r.Style)})
		}
	}
	return words
}

// BreakLines fills lines greedily up to limit. A word wider than limit gets
// a line of its own.
func BreakLines(words []Word, limit float64, measure Measurer) []LineBox {
	var lines []LineBox
	var cur LineBox
	for _, w := range words {
		if len(cur.Words) == 0 {
			cur.Words = append(cur.Words, w)
			cur.Width = w.Width
			continue
		}
		prev := cur.Words[len(cur.Words)-1]
		gap := measure(" ", prev.Style)
		if cur.Width+gap+w.Width <= limit {
			cur.Words = append(cur.Words, w)
			cur.Gaps = append(cur.Gaps, gap)
			cur.Width += gap + w.Width
			continue
		}
		lines = append(lines, cur)
		cur = LineBox{Words: []Word{w}, Width: w.Width}
	}
	if len(cur.Words) > 0 {
		lines = append(lines, cur)
	}
	if n := len(lines); n > 0 {
		lines[n-1].Last = true
	}
	return lines
}

// Justify widens the gaps of a non-final line so it spans limit exactly.
// Lines with a single word, the last line and overfull lines are unchanged.
func (l LineBox) Justify(limit float64) LineBox {
	if l.Last || len(l.Gaps) == 0 || l.Width >= limit {
		return l
	}
	extra := (limit - l.Width) / float64(len(l.Gaps))
	gaps := make([]float64, len(l.Gaps))
	for i, g := range l.Gaps {
		gaps[i] = g + extra
	}
	l.Gaps = gaps
	l.Width = limit
	return l
}

// justifyCells distributes whole cells for fixed-width output: every gap gets
// at least one cell and the leftmost gaps absorb the remainder.
func justifyCells(gaps int, natural, limit int) []int {
	if gaps <= 0 {
		return nil
	}
	out := make([]int, gaps)
	extra := limit - natural
	if extra < 0 {
		extra = 0
	}
	for i := range out {
		out[i] = 1 + extra/gaps
		if i < extra%gaps {
			out[i]++
		}
	}
	return out
}
