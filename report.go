package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// ReportEntry is one line of the sorted code report.
type ReportEntry struct {
	Char   rune
	Weight uint64
	Code   string
}

// Report returns one entry per leaf, ordered by descending weight.  Entries
// of equal weight are ordered by ascending character.
func (t *Tree) Report() []ReportEntry {
	ls := leaves(t.root)
	entries := make(byWeightDesc, len(ls))
	for i, leaf := range ls {
		entries[i] = ReportEntry{Char: leaf.Char, Weight: leaf.Weight, Code: leaf.Code}
	}
	entries.Sort()
	return entries
}

// WriteReport writes the sorted code report to w, one line per leaf in the
// form `'a' 5 "1"` (quoted character, weight, quoted code).  A write error on
// w is returned unchanged.
//
// If echo is non-nil, the identical content is then written to it as a
// secondary diagnostic sink; that write is best-effort and its error is
// discarded.  The two writes are independent: echo still receives the report
// when w fails.
func (t *Tree) WriteReport(w io.Writer, echo io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, entry := range t.Report() {
		fmt.Fprintf(&buf, "%q %d %q\n", entry.Char, entry.Weight, entry.Code)
	}

	out := buf.Bytes()
	n, err := w.Write(out)
	if echo != nil {
		_, _ = echo.Write(out)
	}
	return int64(n), err
}

// type byWeightDesc {{{

type byWeightDesc []ReportEntry

func (list byWeightDesc) Sort() {
	sort.Sort(list)
}

func (list byWeightDesc) Len() int {
	return len(list)
}

func (list byWeightDesc) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byWeightDesc) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	return a.Char < b.Char
}

var _ sort.Interface = byWeightDesc(nil)

// }}}
