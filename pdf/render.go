package pdf

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/dotfmt"
)

var (
	// ErrNotFinished reports an Output call before the document was finished.
	ErrNotFinished = errors.New("pdf: document not finished")
	// ErrClosed reports use of a renderer after Output or Close.
	ErrClosed = errors.New("pdf: renderer closed")
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Config  Config
	Options []dotfmt.Option
}

// Render parses directive text and writes a PDF. Nothing is written to
// Writer unless the whole input was interpreted.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("pdf render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	r, err := NewRenderer(req.Config)
	if err != nil {
		return err
	}
	defer r.Close()
	if err := dotfmt.Parse(dotfmt.ParseRequest{
		Reader:  req.Reader,
		Sink:    r,
		Options: req.Options,
	}); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	return r.Output(req.Writer)
}

// RenderDocument writes a finished document as PDF.
func RenderDocument(doc *dotfmt.Document, w io.Writer, cfg Config) error {
	if doc == nil {
		return fmt.Errorf("pdf render: document is nil")
	}
	r, err := NewRenderer(cfg)
	if err != nil {
		return err
	}
	defer r.Close()
	if err := doc.Replay(r); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	return r.Output(w)
}

// NewRenderer validates cfg and prepares an empty first page. On error no
// renderer is returned.
func NewRenderer(cfgIn Config) (*Renderer, error) {
	cfg := DefaultConfig()
	applyConfig(&cfg, cfgIn)
	if cfg.FontFamily == "" || cfg.FontSize <= 0 || cfg.LargeFontSize <= 0 || cfg.LineHeight <= 0 {
		return nil, fmt.Errorf("pdf render: invalid font configuration")
	}
	hasPath := cfg.RegularFont != "" || cfg.BoldFont != "" || cfg.ItalicFont != "" || cfg.BoldItalicFont != ""
	hasBytes := len(cfg.RegularFontBytes) > 0 || len(cfg.BoldFontBytes) > 0 ||
		len(cfg.ItalicFontBytes) > 0 || len(cfg.BoldItalicFontBytes) > 0
	if hasPath && hasBytes {
		return nil, fmt.Errorf("pdf render: cannot mix font paths with embedded font bytes")
	}
	if hasBytes && (len(cfg.RegularFontBytes) == 0 || len(cfg.BoldFontBytes) == 0 || len(cfg.ItalicFontBytes) == 0) {
		return nil, fmt.Errorf("pdf render: missing embedded font bytes")
	}
	if hasPath && (cfg.RegularFont == "" || cfg.BoldFont == "" || cfg.ItalicFont == "") {
		return nil, fmt.Errorf("pdf render: missing font paths")
	}
	useCoreFont := !hasPath && !hasBytes
	if useCoreFont && !isCoreFont(cfg.FontFamily) {
		return nil, fmt.Errorf("pdf render: core font family required when font paths are empty")
	}

	pdf := gofpdf.New("P", "pt", cfg.PageSize, "")
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, cfg.Margin)
	pdf.SetCreator("dotfmt", true)
	if cfg.Title != "" {
		pdf.SetTitle(cfg.Title, true)
	}
	if cfg.Author != "" {
		pdf.SetAuthor(cfg.Author, true)
	}
	allowBoldItalic := useCoreFont
	switch {
	case hasBytes:
		pdf.AddUTF8FontFromBytes(cfg.FontFamily, "", cfg.RegularFontBytes)
		pdf.AddUTF8FontFromBytes(cfg.FontFamily, "B", cfg.BoldFontBytes)
		pdf.AddUTF8FontFromBytes(cfg.FontFamily, "I", cfg.ItalicFontBytes)
		if len(cfg.BoldItalicFontBytes) > 0 {
			pdf.AddUTF8FontFromBytes(cfg.FontFamily, "BI", cfg.BoldItalicFontBytes)
			allowBoldItalic = true
		}
	case hasPath:
		fontDir := filepath.Dir(cfg.RegularFont)
		if filepath.Dir(cfg.BoldFont) != fontDir || filepath.Dir(cfg.ItalicFont) != fontDir {
			return nil, fmt.Errorf("pdf render: font paths must be in the same directory")
		}
		if cfg.BoldItalicFont != "" && filepath.Dir(cfg.BoldItalicFont) != fontDir {
			return nil, fmt.Errorf("pdf render: bold-italic font must be in the same directory as body fonts")
		}
		pdf.SetFontLocation(fontDir)
		pdf.AddUTF8Font(cfg.FontFamily, "", filepath.Base(cfg.RegularFont))
		pdf.AddUTF8Font(cfg.FontFamily, "B", filepath.Base(cfg.BoldFont))
		pdf.AddUTF8Font(cfg.FontFamily, "I", filepath.Base(cfg.ItalicFont))
		if cfg.BoldItalicFont != "" {
			pdf.AddUTF8Font(cfg.FontFamily, "BI", filepath.Base(cfg.BoldItalicFont))
			allowBoldItalic = true
		}
	}
	pdf.SetFont(cfg.FontFamily, "", cfg.FontSize)
	pdf.SetTextColor(cfg.TextRGB[0], cfg.TextRGB[1], cfg.TextRGB[2])
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf render: font setup failed: %w", err)
	}
	translate := func(s string) string { return s }
	if useCoreFont {
		translate = pdf.UnicodeTranslatorFromDescriptor("")
	}
	r := newRenderer(pdf, cfg, translate, allowBoldItalic)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf render: page setup failed: %w", err)
	}
	return r, nil
}
