package pdf

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/dotfmt"
)

// minLineWidth keeps deeply indented paragraphs printable.
const minLineWidth = 72

// Renderer lays out paragraphs on PDF pages. It implements dotfmt.Sink.
type Renderer struct {
	pdf             *gofpdf.Fpdf
	cfg             Config
	translate       func(string) string
	drawText        func(x, y float64, text string)
	allowBoldItalic bool
	styleCache      map[dotfmt.Style]pdfStyle
	lastStyle       pdfStyle
	lastStyleSet    bool

	y          float64
	pageW      float64
	pageH      float64
	pageTop    bool
	paragraphs int
	finished   bool
	closed     bool
}

func newRenderer(pdf *gofpdf.Fpdf, cfg Config, translate func(string) string, allowBoldItalic bool) *Renderer {
	r := &Renderer{
		pdf:             pdf,
		cfg:             cfg,
		translate:       translate,
		allowBoldItalic: allowBoldItalic,
		styleCache:      make(map[dotfmt.Style]pdfStyle, 8),
	}
	r.drawText = pdf.Text
	r.pageW, r.pageH = pdf.GetPageSize()
	if cfg.PageNumbers {
		pdf.SetFooterFunc(r.footer)
	}
	r.addPage()
	return r
}

func (r *Renderer) addPage() {
	r.pdf.AddPage()
	r.y = r.cfg.Margin
	r.pageTop = true
	r.lastStyleSet = false
}

func (r *Renderer) footer() {
	size := r.cfg.FontSize * 0.8
	r.pdf.SetFont(r.cfg.FontFamily, "", size)
	label := strconv.Itoa(r.pdf.PageNo())
	w := r.pdf.GetStringWidth(label)
	r.pdf.Text((r.pageW-w)/2, r.pageH-r.cfg.Margin/2, label)
	r.lastStyleSet = false
}

// WriteParagraph lays out p below the previous paragraph. Empty paragraphs
// take no space.
func (r *Renderer) WriteParagraph(p dotfmt.Paragraph) error {
	if r.closed {
		return ErrClosed
	}
	if r.finished {
		return dotfmt.ErrDocumentSealed
	}
	words := dotfmt.SplitWords(p, r.measure)
	if len(words) == 0 {
		return nil
	}
	left := r.cfg.Margin + float64(p.Indent)*r.cfg.IndentUnit
	limit := r.pageW - r.cfg.Margin - left
	if limit < minLineWidth {
		limit = minLineWidth
	}
	if r.paragraphs > 0 && !r.pageTop {
		r.y += r.cfg.ParagraphSpacing
	}
	for _, line := range dotfmt.BreakLines(words, limit, r.measure) {
		if p.Fill {
			line = line.Justify(limit)
		}
		r.drawLine(line, left)
	}
	r.paragraphs++
	if err := r.pdf.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	return nil
}

func (r *Renderer) drawLine(line dotfmt.LineBox, left float64) {
	size := 0.0
	for _, w := range line.Words {
		if s := r.style(w.Style).size; s > size {
			size = s
		}
	}
	height := size * r.cfg.LineHeight
	if !r.pageTop && r.y+height > r.pageH-r.cfg.Margin {
		r.addPage()
	}
	baseline := r.y + size
	x := left
	for i, w := range line.Words {
		r.applyStyle(r.style(w.Style))
		r.drawText(x, baseline, r.translate(w.Text))
		x += w.Width
		if i < len(line.Gaps) {
			x += line.Gaps[i]
		}
	}
	r.y += height
	r.pageTop = false
}

func (r *Renderer) style(st dotfmt.Style) pdfStyle {
	ps, ok := r.styleCache[st]
	if !ok {
		ps = styleFor(st, r.cfg, r.allowBoldItalic)
		r.styleCache[st] = ps
	}
	return ps
}

func (r *Renderer) applyStyle(ps pdfStyle) {
	if r.lastStyleSet && r.lastStyle == ps {
		return
	}
	r.pdf.SetFont(r.cfg.FontFamily, ps.fontStyle, ps.size)
	r.lastStyle = ps
	r.lastStyleSet = true
}

func (r *Renderer) measure(text string, st dotfmt.Style) float64 {
	r.applyStyle(r.style(st))
	return r.pdf.GetStringWidth(r.translate(text))
}

// Finish marks the document complete. Output is only allowed afterwards.
func (r *Renderer) Finish() error {
	if r.closed {
		return ErrClosed
	}
	r.finished = true
	return nil
}

// Pages returns the number of pages laid out so far.
func (r *Renderer) Pages() int {
	if r.pdf == nil {
		return 0
	}
	return r.pdf.PageNo()
}

// Output writes the finished PDF to w and releases the renderer.
func (r *Renderer) Output(w io.Writer) error {
	if r.closed {
		return ErrClosed
	}
	if !r.finished {
		return ErrNotFinished
	}
	if w == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	err := r.pdf.Output(w)
	r.Close()
	if err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

// Close releases the renderer without writing anything. It is safe to call
// more than once.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.pdf = nil
	r.styleCache = nil
}
