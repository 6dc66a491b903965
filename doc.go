// Package dotfmt turns plain text with dot directives into styled paragraphs.
//
// Input is line oriented. A line starting with '.' is a directive, anything
// else is literal text:
//
//	.bold
//	Hello
//	.paragraph
//	.indent 4
//	World
//
// Run style directives (.bold, .italics, .large, .regular, .normal) apply to
// the next text line only. Layout directives (.paragraph, .fill, .nofill,
// .indent n) seal the open paragraph and open a new one with the changed
// layout. End of input always seals the last paragraph, so a document has
// one more paragraph than it has layout directives.
//
// The interpreter is a pure function over an explicit state:
//
//	st := dotfmt.NewState()
//	st, sealed, err := dotfmt.Step(st, ".indent 4")
//
// Parse streams a reader through the interpreter into a Sink. Document
// collects paragraphs in memory, TerminalRenderer prints them, and the pdf
// subpackage lays them out on pages.
//
//	doc, err := dotfmt.ParseDocument(strings.NewReader(".bold\nHello\n"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range doc.Paragraphs() {
//		fmt.Println(p.Indent, p.Fill, p.Text())
//	}
package dotfmt
