package pdf

import (
	"strings"

	"pkt.systems/dotfmt"
)

type pdfStyle struct {
	fontStyle string
	size      float64
}

// styleFor maps a run style to a gofpdf style string and size. Without a
// bold-italic face, bold wins.
func styleFor(st dotfmt.Style, cfg Config, allowBoldItalic bool) pdfStyle {
	size := cfg.FontSize
	if st.Large {
		size = cfg.LargeFontSize
	}
	return pdfStyle{
		fontStyle: styleToFontStyle(st.Bold, st.Italic, allowBoldItalic),
		size:      size,
	}
}

func styleToFontStyle(bold, italic bool, allowBoldItalic bool) string {
	if bold && italic && !allowBoldItalic {
		italic = false
	}
	var b strings.Builder
	if bold {
		b.WriteByte('B')
	}
	if italic {
		b.WriteByte('I')
	}
	return b.String()
}

func isCoreFont(name string) bool {
	switch strings.ToLower(name) {
	case "courier", "helvetica", "arial", "times":
		return true
	default:
		return false
	}
}
