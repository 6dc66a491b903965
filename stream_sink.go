package dotfmt

// Sink receives sealed paragraphs in document order. Finish is called once,
// after the final paragraph, and only when the whole input was processed.
type Sink interface {
	WriteParagraph(Paragraph) error
	Finish() error
}
