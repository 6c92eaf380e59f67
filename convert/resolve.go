package convert

import (
	"cmp"
	"sort"

	"github.com/npillmayer/richtext"
	"github.com/rdleal/intervalst/interval"
)

// --- Overlap resolution ------------------------------------------------

// entry is a span registered in the interval tree, remembering its
// document order and its exact bounds.
type entry struct {
	order      int
	start, end int
	sty        richtext.Style
}

// ResolveOverlaps resolves a possibly overlapping span set into a sorted,
// disjoint, merged one over a text of the given length. Where spans
// overlap, the span later in document order wins over the whole of the
// overlap. This matches expansion, which applies spans one after the
// other so that later attribute writes overwrite earlier ones.
//
// Invalid spans and spans starting beyond the text are dropped; spans
// reaching beyond the text are clipped to it.
func ResolveOverlaps(spans []richtext.Span, textLength int) []richtext.Span {
	tree := interval.NewMultiValueSearchTree[entry](func(a, b int) int {
		return cmp.Compare(a, b)
	})
	cuts := make([]int, 0, 2*len(spans))
	registered := 0
	for i, spn := range spans {
		if !spn.IsValid() || spn.Start >= textLength {
			tracer().Debugf("convert: overlap resolution drops span %d…%d", spn.Start, spn.End)
			continue
		}
		end := min(spn.End, textLength)
		tree.Insert(spn.Start, end, entry{order: i, start: spn.Start, end: end, sty: spn.Attributes})
		cuts = append(cuts, spn.Start, end)
		registered++
	}
	if registered == 0 {
		return []richtext.Span{}
	}
	sort.Ints(cuts)
	resolved := make([]richtext.Span, 0, registered)
	for k := 0; k+1 < len(cuts); k++ {
		a, b := cuts[k], cuts[k+1]
		if a >= b {
			continue
		}
		candidates, found := tree.AllIntersections(a, b)
		if !found {
			continue
		}
		// among the spans covering this elementary interval, the latest
		// in document order wins
		winner, covered := entry{order: -1}, false
		for _, e := range candidates {
			if e.start <= a && e.end >= b && e.order > winner.order {
				winner, covered = e, true
			}
		}
		if covered && winner.sty.HasFormatting() {
			resolved = append(resolved, richtext.Span{Start: a, End: b, Attributes: winner.sty})
		}
	}
	return richtext.MergeAdjacent(resolved)
}
