package converter

import "github.com/rgonek/docrebuild/markup"

// ordinals numbers ordered items as blocks stream past. Blank lines keep
// a list run open; any other non-ordered block ends it.
type ordinals struct {
	style OrderedListStyle
	next  int
}

func newOrdinals(style OrderedListStyle) *ordinals {
	return &ordinals{style: style, next: 1}
}

// observe returns the number for an ordered block, or zero for other kinds.
func (o *ordinals) observe(kind markup.BlockKind) int {
	switch kind {
	case markup.BlockOrdered:
		n := o.next
		o.next++
		return n
	case markup.BlockBlank:
		return 0
	default:
		if o.style == OrderedRestart {
			o.next = 1
		}
		return 0
	}
}
