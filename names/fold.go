package names

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold lowercases s and strips its diacritics, so "Thìn" and "THIN" fold to
// the same key. Đ has no decomposition and is mapped to d explicitly.
func fold(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			switch r {
			case 'đ':
				return 'd'
			case 'Đ':
				return 'D'
			}
			return r
		}),
		cases.Fold(),
		norm.NFC,
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// caseless lowercases s but keeps its diacritics.
func caseless(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// lookup returns the index in entries of the name s. Codes such as "HS3"
// are tried first, then a case-insensitive exact match, then a match with
// diacritics removed.
func lookup(s string, entries []string, code string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrUnknown
	}

	if len(s) > len(code) && strings.EqualFold(s[:len(code)], code) {
		if n, err := strconv.Atoi(s[len(code):]); err == nil && n >= 1 && n <= len(entries) {
			return n - 1, nil
		}
	}

	key := caseless(s)
	for i, e := range entries {
		if caseless(e) == key {
			return i, nil
		}
	}

	key = fold(s)
	found := -1
	for i, e := range entries {
		if fold(e) != key {
			continue
		}
		if found >= 0 {
			return 0, ErrAmbiguous
		}
		found = i
	}
	if found < 0 {
		return 0, ErrUnknown
	}
	return found, nil
}
