package pdf

// Config holds PDF rendering settings. Lengths are in points.
type Config struct {
	PageSize         string  `yaml:"page_size"`
	Margin           float64 `yaml:"margin"`
	FontFamily       string  `yaml:"font_family"`
	FontSize         float64 `yaml:"font_size"`
	LargeFontSize    float64 `yaml:"large_font_size"`
	LineHeight       float64 `yaml:"line_height"`
	IndentUnit       float64 `yaml:"indent_unit"`
	ParagraphSpacing float64 `yaml:"paragraph_spacing"`
	RegularFont      string  `yaml:"regular_font"`
	BoldFont         string  `yaml:"bold_font"`
	ItalicFont       string  `yaml:"italic_font"`
	BoldItalicFont   string  `yaml:"bold_italic_font"`
	// Font bytes take the place of font paths; the two cannot be mixed.
	RegularFontBytes    []byte `yaml:"-"`
	BoldFontBytes       []byte `yaml:"-"`
	ItalicFontBytes     []byte `yaml:"-"`
	BoldItalicFontBytes []byte `yaml:"-"`
	TextRGB             [3]int `yaml:"text_rgb"`
	Title               string `yaml:"title"`
	Author              string `yaml:"author"`
	PageNumbers         bool   `yaml:"page_numbers"`
}

// DefaultConfig returns a baseline configuration. One indent unit is 10pt,
// so the fixed fill padding comes out at 100pt.
func DefaultConfig() Config {
	return Config{
		PageSize:         "A4",
		Margin:           36,
		FontFamily:       "Helvetica",
		FontSize:         12,
		LargeFontSize:    22,
		LineHeight:       1.4,
		IndentUnit:       10,
		ParagraphSpacing: 6,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.LargeFontSize > 0 {
		dst.LargeFontSize = src.LargeFontSize
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.IndentUnit > 0 {
		dst.IndentUnit = src.IndentUnit
	}
	if src.ParagraphSpacing > 0 {
		dst.ParagraphSpacing = src.ParagraphSpacing
	}
	if src.RegularFont != "" {
		dst.RegularFont = src.RegularFont
	}
	if src.BoldFont != "" {
		dst.BoldFont = src.BoldFont
	}
	if src.ItalicFont != "" {
		dst.ItalicFont = src.ItalicFont
	}
	if src.BoldItalicFont != "" {
		dst.BoldItalicFont = src.BoldItalicFont
	}
	if len(src.RegularFontBytes) > 0 {
		dst.RegularFontBytes = src.RegularFontBytes
	}
	if len(src.BoldFontBytes) > 0 {
		dst.BoldFontBytes = src.BoldFontBytes
	}
	if len(src.ItalicFontBytes) > 0 {
		dst.ItalicFontBytes = src.ItalicFontBytes
	}
	if len(src.BoldItalicFontBytes) > 0 {
		dst.BoldItalicFontBytes = src.BoldItalicFontBytes
	}
	if src.TextRGB != [3]int{} {
		dst.TextRGB = src.TextRGB
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Author != "" {
		dst.Author = src.Author
	}
	if src.PageNumbers {
		dst.PageNumbers = true
	}
}
