package charset

import "strings"

// Reference is the alphabet the coverage check runs against: Latin and
// Cyrillic in both cases, digits, and common punctuation. Characters outside
// it still classify fine (they fall back to Fallback); it only bounds the
// advisory check.
const Reference = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ" +
	"абвгдеёжзийклмнопрстуфхцчшщъыьэюя" +
	"0123456789" +
	".,:;!?'\"()-–—=+<>~…«»@#$%&*/\\|[]{}^_§`"

// Coverage returns the characters of reference that no category in cs
// contains, in reference order, without duplicates. A non-empty result is
// advisory only: uncovered characters classify as Fallback.
func (cs Categories) Coverage(reference string) []rune {
	var gaps []rune
	seen := make(map[rune]bool)
	for _, r := range reference {
		if seen[r] {
			continue
		}
		seen[r] = true
		if !cs.contains(r) {
			gaps = append(gaps, r)
		}
	}
	return gaps
}

func (cs Categories) contains(r rune) bool {
	for _, c := range cs {
		if strings.ContainsRune(c.Set, r) {
			return true
		}
	}
	return false
}
