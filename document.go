package dotfmt

import "errors"

// ErrDocumentSealed reports a write after completion.
var ErrDocumentSealed = errors.New("document is complete")

// Document is the append-only sequence of sealed paragraphs. It implements
// Sink so it can collect the output of an Interpreter directly.
type Document struct {
	paragraphs []Paragraph
	complete   bool
}

// WriteParagraph appends p. The document keeps its own copy.
func (d *Document) WriteParagraph(p Paragraph) error {
	if d.complete {
		return ErrDocumentSealed
	}
	d.paragraphs = append(d.paragraphs, p.clone())
	return nil
}

// Finish marks the document complete.
func (d *Document) Finish() error {
	d.complete = true
	return nil
}

// Complete reports whether Finish has been called.
func (d *Document) Complete() bool { return d.complete }

// Len returns the number of paragraphs.
func (d *Document) Len() int { return len(d.paragraphs) }

// Paragraph returns a copy of the i-th paragraph.
func (d *Document) Paragraph(i int) Paragraph { return d.paragraphs[i].clone() }

// Paragraphs returns copies of all paragraphs in reading order.
func (d *Document) Paragraphs() []Paragraph {
	out := make([]Paragraph, len(d.paragraphs))
	for i, p := range d.paragraphs {
		out[i] = p.clone()
	}
	return out
}

// Replay writes every paragraph to sink and finishes it. The document must
// be complete.
func (d *Document) Replay(sink Sink) error {
	if !d.complete {
		return errors.New("replay: document is not complete")
	}
	for _, p := range d.paragraphs {
		if err := sink.WriteParagraph(p.clone()); err != nil {
			return err
		}
	}
	return sink.Finish()
}
