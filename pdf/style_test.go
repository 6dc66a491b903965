package pdf

import (
	"testing"

	"pkt.systems/dotfmt"
)

func TestStyleToFontStyle(t *testing.T) {
	if got := styleToFontStyle(true, true, false); got != "B" {
		t.Fatalf("expected bold-only fallback, got %q", got)
	}
	if got := styleToFontStyle(true, true, true); got != "BI" {
		t.Fatalf("expected bold-italic when allowed, got %q", got)
	}
	if got := styleToFontStyle(false, true, false); got != "I" {
		t.Fatalf("expected italic, got %q", got)
	}
	if got := styleToFontStyle(false, false, true); got != "" {
		t.Fatalf("expected regular, got %q", got)
	}
}

func TestStyleForLargeSize(t *testing.T) {
	cfg := DefaultConfig()
	large := styleFor(dotfmt.Style{Large: true, Bold: true}, cfg, true)
	if large.size != cfg.LargeFontSize {
		t.Fatalf("unexpected large size: got %v want %v", large.size, cfg.LargeFontSize)
	}
	if large.fontStyle != "B" {
		t.Fatalf("unexpected large font style %q", large.fontStyle)
	}
	plain := styleFor(dotfmt.Style{}, cfg, true)
	if plain.size != cfg.FontSize || plain.fontStyle != "" {
		t.Fatalf("unexpected plain style: %+v", plain)
	}
}

func TestIsCoreFont(t *testing.T) {
	for _, name := range []string{"Courier", "helvetica", "ARIAL", "Times"} {
		if !isCoreFont(name) {
			t.Fatalf("expected %q to be a core font", name)
		}
	}
	if isCoreFont("DejaVuSans") {
		t.Fatalf("expected DejaVuSans not to be a core font")
	}
}

func TestApplyConfigKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	applyConfig(&cfg, Config{FontSize: 10, PageNumbers: true, TextRGB: [3]int{10, 20, 30}})
	if cfg.FontSize != 10 {
		t.Fatalf("expected font size override, got %v", cfg.FontSize)
	}
	if cfg.LargeFontSize != 22 || cfg.IndentUnit != 10 || cfg.PageSize != "A4" {
		t.Fatalf("expected defaults to survive: %+v", cfg)
	}
	if !cfg.PageNumbers || cfg.TextRGB != [3]int{10, 20, 30} {
		t.Fatalf("expected page numbers and color: %+v", cfg)
	}
}
