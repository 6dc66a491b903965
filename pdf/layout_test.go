package pdf

import (
	"math"
	"sort"
	"strings"
	"testing"

	"pkt.systems/dotfmt"
)

type placedWord struct {
	x    float64
	text string
}

// recordLines captures drawn words grouped by baseline, top to bottom.
func recordLines(t *testing.T, r *Renderer) func() [][]placedWord {
	t.Helper()
	byBaseline := map[float64][]placedWord{}
	r.drawText = func(x, y float64, text string) {
		byBaseline[y] = append(byBaseline[y], placedWord{x: x, text: text})
	}
	return func() [][]placedWord {
		ys := make([]float64, 0, len(byBaseline))
		for y := range byBaseline {
			ys = append(ys, y)
		}
		sort.Float64s(ys)
		lines := make([][]placedWord, 0, len(ys))
		for _, y := range ys {
			lines = append(lines, byBaseline[y])
		}
		return lines
	}
}

func TestRendererFillParagraphLayout(t *testing.T) {
	cfg := DefaultConfig()
	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	defer r.Close()
	lines := recordLines(t, r)
	p := dotfmt.Paragraph{
		Runs:   []dotfmt.Run{{Text: strings.Repeat("lorem ipsum dolor sit amet ", 12)}},
		Layout: dotfmt.Layout{Indent: dotfmt.FillIndent, Fill: true},
	}
	if err := r.WriteParagraph(p); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := lines()
	if len(got) < 2 {
		t.Fatalf("expected several lines, got %d", len(got))
	}
	left := cfg.Margin + float64(dotfmt.FillIndent)*cfg.IndentUnit
	right := r.pageW - cfg.Margin
	for i, line := range got {
		if math.Abs(line[0].x-left) > 1e-6 {
			t.Fatalf("line %d starts at %v, want %v", i, line[0].x, left)
		}
		lastWord := line[len(line)-1]
		end := lastWord.x + r.measure(lastWord.text, dotfmt.Style{})
		if i < len(got)-1 {
			if math.Abs(end-right) > 1e-6 {
				t.Fatalf("justified line %d ends at %v, want %v", i, end, right)
			}
			continue
		}
		if end >= right-1 {
			t.Fatalf("last line should stay ragged, ends at %v (right edge %v)", end, right)
		}
	}
}

func TestRendererIndentLayout(t *testing.T) {
	cfg := DefaultConfig()
	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	defer r.Close()
	lines := recordLines(t, r)
	for _, p := range []dotfmt.Paragraph{
		{Runs: []dotfmt.Run{{Text: "flush"}}},
		{Runs: []dotfmt.Run{{Text: "indented"}}, Layout: dotfmt.Layout{Indent: 3}},
	} {
		if err := r.WriteParagraph(p); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	got := lines()
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got))
	}
	if got[0][0].x != cfg.Margin {
		t.Fatalf("flush paragraph starts at %v, want %v", got[0][0].x, cfg.Margin)
	}
	if want := cfg.Margin + 3*cfg.IndentUnit; math.Abs(got[1][0].x-want) > 1e-6 {
		t.Fatalf("indented paragraph starts at %v, want %v", got[1][0].x, want)
	}
}
