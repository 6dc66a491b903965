package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/dotfmt"
	"pkt.systems/dotfmt/internal/config"
	"pkt.systems/dotfmt/internal/logging"
	"pkt.systems/dotfmt/pdf"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	customFontFamily = "dotfmt"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
	exitParse
)

func init() {
	version.SetDefaultModule("pkt.systems/dotfmt")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	themeName     string
	width         int
	indentColumns int
	listThemes    bool
	outPath       string
	boring        bool
	lenient       bool
	ignoreUnknown bool
	configPath    string
	logLevel      string
	logFormat     string
	pdfMode       bool
	pdf           pdf.Config
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	pdfDefaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("dotfmt", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.IntVar(&opts.indentColumns, "indent-columns", dotfmt.DefaultIndentColumns, "Terminal columns per indent unit")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate output without ANSI styling")
	flags.BoolVar(&opts.lenient, "lenient", false, "Skip malformed directives instead of failing")
	flags.BoolVar(&opts.ignoreUnknown, "ignore-unknown", false, "Treat unknown directives as no-ops and log a warning")
	flags.StringVar(&opts.configPath, "config", "", "YAML file with default settings")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format: text|json")
	flags.BoolVar(&opts.pdfMode, "pdf", false, "Generate a PDF instead of terminal output")
	flags.StringVar(&opts.pdf.PageSize, "pdf-page-size", pdfDefaults.PageSize, "PDF page size")
	flags.Float64Var(&opts.pdf.Margin, "pdf-margin", pdfDefaults.Margin, "Page margin in points")
	flags.Float64Var(&opts.pdf.FontSize, "pdf-font-size", pdfDefaults.FontSize, "Base font size in points")
	flags.Float64Var(&opts.pdf.LargeFontSize, "pdf-large-font-size", pdfDefaults.LargeFontSize, "Font size for .large text in points")
	flags.Float64Var(&opts.pdf.LineHeight, "pdf-line-height", pdfDefaults.LineHeight, "Line height multiplier")
	flags.Float64Var(&opts.pdf.IndentUnit, "pdf-indent-unit", pdfDefaults.IndentUnit, "Points per indent unit")
	flags.StringVar(&opts.pdf.FontFamily, "pdf-font-family", pdfDefaults.FontFamily, "Core font family (Courier, Helvetica, Times)")
	flags.StringVar(&opts.pdf.RegularFont, "pdf-regular-font", "", "TTF path for regular font")
	flags.StringVar(&opts.pdf.BoldFont, "pdf-bold-font", "", "TTF path for bold font")
	flags.StringVar(&opts.pdf.ItalicFont, "pdf-italic-font", "", "TTF path for italic font")
	flags.StringVar(&opts.pdf.BoldItalicFont, "pdf-bold-italic-font", "", "TTF path for bold-italic font")
	flags.BoolVar(&opts.pdf.PageNumbers, "pdf-page-numbers", false, "Print page numbers in the footer")
	flags.StringVar(&opts.pdf.Title, "pdf-title", "", "PDF document title")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: dotfmt [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, text is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.listThemes {
		printThemes(stdout)
		return exitOK
	}

	if opts.configPath != "" {
		file, err := config.Load(normalizePath(opts.configPath))
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return exitUsage
		}
		mergeConfig(&opts, file, flags)
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --log-level: %v\n", err)
		return exitUsage
	}
	format, err := logging.ParseFormat(opts.logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --log-format: %v\n", err)
		return exitUsage
	}
	logger := logging.Init(level, format, stderr)

	theme, ok := dotfmt.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(stderr)
		return exitUsage
	}
	if opts.boring {
		theme = dotfmt.BoringTheme()
	}

	if !opts.pdfMode && opts.outPath != "" && strings.HasSuffix(strings.ToLower(opts.outPath), ".pdf") {
		logger.Warn("output ends with .pdf; enabling --pdf", "output", opts.outPath)
		opts.pdfMode = true
	}
	if opts.pdfMode && opts.outPath == "" && isTerminal(stdout) {
		fmt.Fprintln(stderr, "refusing to write PDF to terminal; use -o/--output")
		return exitUsage
	}

	reader, closer, err := openInputs(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return exitFailure
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	out, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return exitFailure
	}

	parseOpts := parseOptions(opts)
	if opts.pdfMode {
		cfg, cfgErr := pdfConfig(opts.pdf)
		if cfgErr != nil {
			out.abort()
			fmt.Fprintf(stderr, "pdf config: %v\n", cfgErr)
			return exitUsage
		}
		err = pdf.Render(pdf.RenderRequest{
			Reader:  reader,
			Writer:  out.w,
			Config:  cfg,
			Options: parseOpts,
		})
	} else {
		err = dotfmt.Render(dotfmt.RenderRequest{
			Reader:       reader,
			Writer:       out.w,
			Width:        resolveWidth(opts.width, stdout),
			Theme:        theme,
			Options:      []dotfmt.RenderOption{dotfmt.WithIndentColumns(opts.indentColumns)},
			ParseOptions: parseOpts,
		})
	}
	if err != nil {
		out.abort()
		fmt.Fprintf(stderr, "render: %v\n", err)
		return exitCode(err)
	}
	if err := out.commit(); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return exitFailure
	}
	logger.Debug("render complete", "pdf", opts.pdfMode, "output", opts.outPath)
	return exitOK
}

func parseOptions(opts options) []dotfmt.Option {
	parseOpts := []dotfmt.Option{
		dotfmt.WithStrict(!opts.lenient),
		dotfmt.WithLogger(logging.Logger()),
	}
	if opts.ignoreUnknown {
		parseOpts = append(parseOpts, dotfmt.WithUnknownDirectives(dotfmt.UnknownIgnore))
	}
	return parseOpts
}

func exitCode(err error) int {
	var pe *dotfmt.ParseError
	switch {
	case errors.As(err, &pe):
		return exitParse
	case errors.Is(err, dotfmt.ErrInvalidUTF8), errors.Is(err, dotfmt.ErrBinaryInput):
		return exitParse
	default:
		return exitFailure
	}
}

// mergeConfig applies file settings to every option not set on the command
// line.
func mergeConfig(opts *options, file config.File, flags *pflag.FlagSet) {
	if file.Strict != nil && !flags.Changed("lenient") {
		opts.lenient = !*file.Strict
	}
	if file.IgnoreUnknown && !flags.Changed("ignore-unknown") {
		opts.ignoreUnknown = true
	}
	if file.Theme != "" && !flags.Changed("theme") {
		opts.themeName = file.Theme
	}
	if file.Width > 0 && !flags.Changed("width") {
		opts.width = file.Width
	}
	if file.IndentColumns != nil && !flags.Changed("indent-columns") {
		opts.indentColumns = *file.IndentColumns
	}
	if file.LogLevel != "" && !flags.Changed("log-level") {
		opts.logLevel = file.LogLevel
	}
	if file.LogFormat != "" && !flags.Changed("log-format") {
		opts.logFormat = file.LogFormat
	}
	merged := file.PDF
	keep := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	keep("pdf-page-size", func() { merged.PageSize = opts.pdf.PageSize })
	keep("pdf-margin", func() { merged.Margin = opts.pdf.Margin })
	keep("pdf-font-size", func() { merged.FontSize = opts.pdf.FontSize })
	keep("pdf-large-font-size", func() { merged.LargeFontSize = opts.pdf.LargeFontSize })
	keep("pdf-line-height", func() { merged.LineHeight = opts.pdf.LineHeight })
	keep("pdf-indent-unit", func() { merged.IndentUnit = opts.pdf.IndentUnit })
	keep("pdf-font-family", func() { merged.FontFamily = opts.pdf.FontFamily })
	keep("pdf-regular-font", func() { merged.RegularFont = opts.pdf.RegularFont })
	keep("pdf-bold-font", func() { merged.BoldFont = opts.pdf.BoldFont })
	keep("pdf-italic-font", func() { merged.ItalicFont = opts.pdf.ItalicFont })
	keep("pdf-bold-italic-font", func() { merged.BoldItalicFont = opts.pdf.BoldItalicFont })
	keep("pdf-page-numbers", func() { merged.PageNumbers = opts.pdf.PageNumbers })
	keep("pdf-title", func() { merged.Title = opts.pdf.Title })
	base := pdf.DefaultConfig()
	if merged.PageSize == "" {
		merged.PageSize = base.PageSize
	}
	if merged.FontFamily == "" {
		merged.FontFamily = base.FontFamily
	}
	opts.pdf = merged
}

// pdfConfig validates TTF paths and switches to a custom family when they
// are set.
func pdfConfig(in pdf.Config) (pdf.Config, error) {
	cfg := in
	reg, bold, italic := strings.TrimSpace(in.RegularFont), strings.TrimSpace(in.BoldFont), strings.TrimSpace(in.ItalicFont)
	if reg == "" && bold == "" && italic == "" {
		if in.BoldItalicFont != "" {
			return pdf.Config{}, fmt.Errorf("bold-italic font requires regular, bold, and italic fonts")
		}
		return cfg, nil
	}
	if reg == "" || bold == "" || italic == "" {
		return pdf.Config{}, fmt.Errorf("regular, bold, and italic fonts must all be provided")
	}
	fonts := []struct {
		name string
		dst  *string
		src  string
	}{
		{"regular font", &cfg.RegularFont, reg},
		{"bold font", &cfg.BoldFont, bold},
		{"italic font", &cfg.ItalicFont, italic},
		{"bold-italic font", &cfg.BoldItalicFont, strings.TrimSpace(in.BoldItalicFont)},
	}
	for _, f := range fonts {
		if f.src == "" {
			continue
		}
		path := normalizePath(f.src)
		if err := ensureFont(path); err != nil {
			return pdf.Config{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = path
	}
	cfg.FontFamily = customFontFamily
	return cfg, nil
}

func printThemes(w io.Writer) {
	for _, name := range dotfmt.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int, out io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(out, defaultWidth)
}

func terminalWidth(out io.Writer, fallback int) int {
	if f, ok := out.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				return w
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

// multiInputReader reads its sources back to back, opening each lazily. A
// source that does not end in a newline is terminated with one so its last
// line never merges with the next source, and a leading UTF-8 BOM is dropped
// from every source.
type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	last      byte
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = skipBOM(reader)
			m.curCloser = closer
			m.last = 0
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			m.last = p[n-1]
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			if m.last != 0 && m.last != '\n' {
				m.last = '\n'
				p[0] = '\n'
				return 1, nil
			}
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw, stdin)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string, stdin io.Reader) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return inputSource{open: func() (io.Reader, io.Closer, error) {
			return stdin, nil, nil
		}}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	body, err := dotfmt.FetchURL(context.Background(), http.DefaultClient, raw)
	if err != nil {
		return nil, nil, err
	}
	return body, body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// output is the render destination. File output goes to a temporary file
// next to the target and only replaces it on commit.
type output struct {
	w      io.Writer
	commit func() error
	abort  func()
}

func resolveOutput(path string, stdout io.Writer) (*output, error) {
	if strings.TrimSpace(path) == "" {
		return &output{
			w:      stdout,
			commit: func() error { return nil },
			abort:  func() {},
		}, nil
	}
	target := normalizePath(path)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return nil, err
	}
	done := false
	return &output{
		w: tmp,
		commit: func() error {
			if done {
				return nil
			}
			done = true
			if err := tmp.Close(); err != nil {
				_ = os.Remove(tmp.Name())
				return err
			}
			if err := os.Chmod(tmp.Name(), 0o644); err != nil {
				_ = os.Remove(tmp.Name())
				return err
			}
			if err := os.Rename(tmp.Name(), target); err != nil {
				_ = os.Remove(tmp.Name())
				return err
			}
			return nil
		},
		abort: func() {
			if done {
				return
			}
			done = true
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		},
	}, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func ensureFont(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory")
	}
	if !strings.HasSuffix(strings.ToLower(info.Name()), ".ttf") {
		return fmt.Errorf("expected .ttf font file")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
