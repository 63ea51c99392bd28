// Package charset implements character category classification for the
// decorator. A category groups characters that share a vertical ink profile
// (ascenders, descenders, x-height) so that a stylesheet can align a mask to
// each glyph's visual footprint.
package charset

import (
	"sort"
	"strings"
)

// Fallback is the category returned when no configured category contains a
// character. It always exists implicitly and never needs to be declared.
const Fallback = "low"

// Category pairs a category name with the string of characters belonging to
// it. Membership is per rune; order inside Set is irrelevant.
type Category struct {
	Name string
	Set  string
}

// Categories is an ordered category list. Order is the classification
// contract: when two categories contain the same character, the one declared
// earlier wins. A plain map would lose that guarantee.
type Categories []Category

// Classify returns the name of the first category whose set contains r, or
// Fallback when none does. It is pure and total over any rune.
func (cs Categories) Classify(r rune) string {
	for _, c := range cs {
		if strings.ContainsRune(c.Set, r) {
			return c.Name
		}
	}
	return Fallback
}

// Merge returns a new Categories with the overrides applied key by key:
// an override replaces the set of an existing category in place, keeping its
// position; unknown names are appended as new categories in sorted name order
// so the result stays deterministic. Entries with an empty name or set are
// ignored. The receiver is never mutated.
func (cs Categories) Merge(overrides map[string]string) Categories {
	merged := make(Categories, len(cs))
	copy(merged, cs)

	var added []string
	for name, set := range overrides {
		if name == "" || set == "" {
			continue
		}
		replaced := false
		for i := range merged {
			if merged[i].Name == name {
				merged[i].Set = set
				replaced = true
				break
			}
		}
		if !replaced {
			added = append(added, name)
		}
	}

	sort.Strings(added)
	for _, name := range added {
		merged = append(merged, Category{Name: name, Set: overrides[name]})
	}
	return merged
}

// Default returns the built-in category configuration. The grouping follows
// the vertical extent of each glyph in common Latin and Cyrillic typefaces:
//
//   - tallUpDown: ink both above x-height and below the baseline
//   - tallUp:     ink above x-height (capitals, ascenders, digits, the
//     dotted i and j-less tall marks)
//   - tallDown:   ink below the baseline (descenders)
//   - low:        x-height only; also the implicit fallback
func Default() Categories {
	return Categories{
		{Name: "tallUpDown", Set: `jQф()[]{}|/\@$§&`},
		{Name: "tallUp", Set: "ABCDEFGHIJKLMNOPRSTUVWXYZbdfhiklt0123456789" +
			"АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯбвёй" + "!?\"'`^*#%"},
		{Name: "tallDown", Set: "gpqyдзруцщ,;_"},
		{Name: "low", Set: "acemnorsuvwxz" +
			"агежиклмнопстхчшъыьэюя" + ".:-–—=+<>~…«»"},
	}
}
