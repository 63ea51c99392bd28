// Package segment splits text into maximal runs of whitespace and
// non-whitespace. The split is lossless: concatenating the runs in order
// reconstructs the input byte for byte.
package segment

import "unicode"

// Run is a maximal slice of the source string: either a whitespace run
// (Space true) preserved verbatim, or a word.
type Run struct {
	Text  string
	Space bool
}

// Split returns the runs of s in order. Boundaries follow unicode.IsSpace,
// so tabs, newlines and non-ASCII spaces all count as whitespace. An empty
// input yields no runs.
func Split(s string) []Run {
	var runs []Run
	start := 0
	space := false
	for i, r := range s {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			space = isSpace
			continue
		}
		if isSpace != space {
			runs = append(runs, Run{Text: s[start:i], Space: space})
			start = i
			space = isSpace
		}
	}
	if start < len(s) {
		runs = append(runs, Run{Text: s[start:], Space: space})
	}
	return runs
}
