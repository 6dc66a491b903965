package dotfmt

import "slices"

// builder accumulates runs into the open paragraph. A builder value is
// copied by Step, so append must never write into storage shared with an
// earlier copy.
type builder struct {
	open Paragraph
}

func newBuilder(layout Layout) builder {
	return builder{open: Paragraph{Layout: layout}}
}

func (b builder) append(r Run) builder {
	b.open.Runs = append(slices.Clip(b.open.Runs), r)
	return b
}

// flush seals the open paragraph. The sealed value owns its runs, even when
// the paragraph is empty.
func (b builder) flush() Paragraph {
	sealed := b.open.clone()
	if sealed.Runs == nil {
		sealed.Runs = []Run{}
	}
	return sealed
}

func (b builder) reopen(layout Layout) builder {
	return newBuilder(layout)
}
