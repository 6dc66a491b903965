package dotfmt

import (
	"sort"

	"github.com/fatih/color"
)

// TermStyle is a list of terminal attributes applied to a span of text.
type TermStyle []color.Attribute

// Styles groups the terminal attributes the terminal renderer combines for a run.
type Styles struct {
	Text   TermStyle
	Bold   TermStyle
	Italic TermStyle
	Large  TermStyle
}

// Theme provides named styles for terminal rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// attributes merges the attributes that apply to st.
func (s Styles) attributes(st Style) []color.Attribute {
	var out []color.Attribute
	out = append(out, s.Text...)
	if st.Bold {
		out = append(out, s.Bold...)
	}
	if st.Italic {
		out = append(out, s.Italic...)
	}
	if st.Large {
		out = append(out, s.Large...)
	}
	return out
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Bold:   TermStyle{color.Bold},
		Italic: TermStyle{color.Italic},
		Large:  TermStyle{color.Bold, color.Underline},
	}},
	"ink": theme{name: "ink", styles: Styles{
		Text:   TermStyle{color.FgWhite},
		Bold:   TermStyle{color.Bold, color.FgHiWhite},
		Italic: TermStyle{color.Italic, color.FgCyan},
		Large:  TermStyle{color.Bold, color.Underline, color.FgHiYellow},
	}},
	"paper": theme{name: "paper", styles: Styles{
		Text:   TermStyle{color.FgBlack},
		Bold:   TermStyle{color.Bold},
		Italic: TermStyle{color.Italic, color.FgBlue},
		Large:  TermStyle{color.Bold, color.Underline, color.FgRed},
	}},
	"boring": theme{name: "boring"},
}

// DefaultTheme returns the default terminal theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme that emits no escape sequences.
func BoringTheme() Theme {
	return builtinThemes["boring"]
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	t, ok := builtinThemes[name]
	return t, ok
}

// AvailableThemes lists the built-in theme names in sorted order.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
