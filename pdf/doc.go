// Package pdf lays out dotfmt paragraphs on PDF pages.
//
// Renderer implements dotfmt.Sink, so it can sit directly behind the
// streaming interpreter. Paragraph indent is measured in Config.IndentUnit
// points and fill paragraphs are fully justified except for their last line.
//
//	err := pdf.Render(pdf.RenderRequest{
//		Reader: strings.NewReader(".large\nReport\n.fill\nBody text.\n"),
//		Writer: outFile,
//		Config: pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Core fonts (Courier, Helvetica, Arial, Times) need no files. For other
// faces set RegularFont/BoldFont/ItalicFont, or pass the TTF data through
// RegularFontBytes/BoldFontBytes/ItalicFontBytes. Nothing is written to the
// output writer unless the whole input was interpreted.
package pdf
