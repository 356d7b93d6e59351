// Package names maps lunisolar stems, branches and their attributes to
// display names in Vietnamese, Chinese and English, and parses those names
// back.
//
// The locale is chosen with golang.org/x/text/language matching, so any
// reasonable tag ("vi-VN", "zh-Hant-TW", "en-GB") resolves to the closest
// supported table. Vietnamese is the fallback.
//
//	n := names.New(language.Vietnamese)
//	n.Pair(lunisolar.YearPair(2010)) // "Canh Dần"
package names

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/rabitt1ove/lunisolar"
)

var (
	// ErrUnknown is returned when a name matches no entry of the table.
	ErrUnknown = errors.New("names: unknown name")

	// ErrAmbiguous is returned when a name only matches after accents are
	// removed and more than one entry folds to it (e.g. "Ty" for Tý and Tỵ).
	ErrAmbiguous = errors.New("names: ambiguous name")
)

// Names holds the display names of one locale. Create one with [New] or
// [Parse]. A Names value is immutable and safe for concurrent use.
type Names struct {
	tag language.Tag
	t   *table
}

// New returns the names of the supported locale that best matches tags,
// in order of preference. With no tags, or no match, it returns Vietnamese.
func New(tags ...language.Tag) *Names {
	_, idx, _ := matcher.Match(tags...)
	return &Names{tag: supported[idx], t: tables[idx]}
}

// Parse is like New but takes an Accept-Language style list such as
// "zh-TW,zh;q=0.9,en;q=0.5".
func Parse(accept string) (*Names, error) {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil {
		return nil, fmt.Errorf("names: parse %q: %w", accept, err)
	}
	return New(tags...), nil
}

// Tag returns the supported locale n resolved to.
func (n *Names) Tag() language.Tag {
	return n.tag
}

// Stem returns the name of s.
func (n *Names) Stem(s lunisolar.Stem) string {
	return n.t.stems[s.Ordinal()]
}

// Branch returns the name of b.
func (n *Names) Branch(b lunisolar.Branch) string {
	return n.t.branches[b.Ordinal()]
}

// Pair returns the stem and branch names of p joined the way the locale
// writes them.
func (n *Names) Pair(p lunisolar.Pair) string {
	return n.Stem(p.Stem) + n.t.sep + n.Branch(p.Branch)
}

// Zodiac returns the name of the animal z.
func (n *Names) Zodiac(z lunisolar.Zodiac) string {
	return n.t.zodiacs[z.Branch().Ordinal()]
}

// Element returns the name of e.
func (n *Names) Element(e lunisolar.Element) string {
	if e < 0 || int(e) >= len(n.t.elements) {
		return ""
	}
	return n.t.elements[e]
}

// Polarity returns the name of p.
func (n *Names) Polarity(p lunisolar.Polarity) string {
	if p < 0 || int(p) >= len(n.t.polarities) {
		return ""
	}
	return n.t.polarities[p]
}

// ParseStem returns the stem named s. It accepts the locale's names and the
// codes "HS1" through "HS10", ignoring case. A name written without accents
// matches when exactly one stem folds to it.
func (n *Names) ParseStem(s string) (lunisolar.Stem, error) {
	i, err := lookup(s, n.t.stems[:], "HS")
	if err != nil {
		return 0, fmt.Errorf("stem %q: %w", s, err)
	}
	return lunisolar.StemFromOrdinal(i), nil
}

// ParseBranch returns the branch named s. It accepts the locale's names and
// the codes "EB1" through "EB12", ignoring case. A name written without
// accents matches when exactly one branch folds to it.
func (n *Names) ParseBranch(s string) (lunisolar.Branch, error) {
	i, err := lookup(s, n.t.branches[:], "EB")
	if err != nil {
		return 0, fmt.Errorf("branch %q: %w", s, err)
	}
	return lunisolar.BranchFromOrdinal(i), nil
}
