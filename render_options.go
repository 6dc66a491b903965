package dotfmt

import "log/slog"

// Option configures parsing behavior.
type Option func(*parseConfig)

type parseConfig struct {
	strict  bool
	unknown Policy
	logger  *slog.Logger
	onError func(*ParseError)
}

func newParseConfig(opts []Option) parseConfig {
	cfg := parseConfig{strict: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithStrict selects whether a malformed directive aborts the run (true, the
// default) or is skipped and recorded (false).
func WithStrict(strict bool) Option {
	return func(cfg *parseConfig) {
		cfg.strict = strict
	}
}

// WithUnknownDirectives sets the policy for unknown directive names.
func WithUnknownDirectives(p Policy) Option {
	return func(cfg *parseConfig) {
		cfg.unknown = p
	}
}

// WithLogger sets the logger used for skipped lines and progress.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *parseConfig) {
		cfg.logger = logger
	}
}

// WithErrorHandler registers fn to receive every parse error, including the
// ones that are skipped.
func WithErrorHandler(fn func(*ParseError)) Option {
	return func(cfg *parseConfig) {
		cfg.onError = fn
	}
}

// RenderOption configures terminal rendering.
type RenderOption func(*renderConfig)

type renderConfig struct {
	indentColumns int
}

// DefaultIndentColumns is the number of columns per indent unit.
const DefaultIndentColumns = 2

// WithIndentColumns sets how many columns one indent unit occupies.
func WithIndentColumns(n int) RenderOption {
	return func(cfg *renderConfig) {
		if n >= 0 {
			cfg.indentColumns = n
		}
	}
}
