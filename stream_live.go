package dotfmt

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

// ParseRequest configures Parse.
type ParseRequest struct {
	Reader  io.Reader
	Sink    Sink
	Options []Option
}

// Parse reads directive text line by line and writes sealed paragraphs to
// the sink. The sink is finished only when the whole input was consumed
// without an aborting error.
func Parse(req ParseRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("parse: reader is nil")
	}
	if req.Sink == nil {
		return fmt.Errorf("parse: sink is nil")
	}
	in := NewInterpreter(req.Sink, req.Options...)
	if err := feedReader(in, req.Reader); err != nil {
		return err
	}
	if err := in.Close(); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return nil
}

func feedReader(in *Interpreter, r io.Reader) error {
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(r)
	defer func() {
		reader.Reset(nil)
		readerPool.Put(reader)
	}()
	var v validator
	v.reset()
	first := true
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("parse: read: %w", readErr)
		}
		if raw == "" && readErr == io.EOF {
			return nil
		}
		line := trimLineEnd(raw)
		if first {
			line = trimBOM(line)
			first = false
		}
		line, err := v.cleanLine(line)
		if err != nil {
			return fmt.Errorf("parse: line %d: %w", in.Line()+1, err)
		}
		if err := in.Feed(line); err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

// ParseLines interprets lines and returns the finished document.
func ParseLines(lines []string, opts ...Option) (*Document, error) {
	doc := &Document{}
	in := NewInterpreter(doc, opts...)
	for _, line := range lines {
		if err := in.Feed(line); err != nil {
			return nil, err
		}
	}
	if err := in.Close(); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseDocument reads r into a finished document.
func ParseDocument(r io.Reader, opts ...Option) (*Document, error) {
	doc := &Document{}
	if err := Parse(ParseRequest{Reader: r, Sink: doc, Options: opts}); err != nil {
		return nil, err
	}
	return doc, nil
}
