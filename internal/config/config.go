// Package config loads the optional YAML defaults file used by the CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"pkt.systems/dotfmt/pdf"
)

// File is the on-disk configuration. Zero values mean "not set".
type File struct {
	Strict        *bool      `yaml:"strict"`
	IgnoreUnknown bool       `yaml:"ignore_unknown"`
	Theme         string     `yaml:"theme"`
	Width         int        `yaml:"width"`
	IndentColumns *int       `yaml:"indent_columns"`
	LogLevel      string     `yaml:"log_level"`
	LogFormat     string     `yaml:"log_format"`
	PDF           pdf.Config `yaml:"pdf"`
}

// Load reads and decodes path. Unknown keys are rejected.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads one YAML document from r. An empty document yields a zero File.
func Decode(r io.Reader) (File, error) {
	var cfg File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}
	if cfg.Width < 0 {
		return File{}, fmt.Errorf("width must be >= 0, got %d", cfg.Width)
	}
	if cfg.IndentColumns != nil && *cfg.IndentColumns < 0 {
		return File{}, fmt.Errorf("indent_columns must be >= 0, got %d", *cfg.IndentColumns)
	}
	return cfg, nil
}
