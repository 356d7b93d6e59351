package lunisolar

import "fmt"

// Stem is one of the ten heavenly stems, ordinal 0 through 9.
type Stem int

// The heavenly stems in cycle order.
const (
	Stem1 Stem = iota
	Stem2
	Stem3
	Stem4
	Stem5
	Stem6
	Stem7
	Stem8
	Stem9
	Stem10
)

// Branch is one of the twelve earthly branches, ordinal 0 through 11.
type Branch int

// The earthly branches in cycle order.
const (
	Branch1 Branch = iota
	Branch2
	Branch3
	Branch4
	Branch5
	Branch6
	Branch7
	Branch8
	Branch9
	Branch10
	Branch11
	Branch12
)

// Element is one of the five phases.
type Element int

const (
	Metal Element = iota
	Wood
	Water
	Fire
	Earth
)

// Polarity is the yin/yang aspect of a stem or branch.
type Polarity int

const (
	Yin Polarity = iota
	Yang
)

// Zodiac is the animal associated with an earthly branch.
type Zodiac int

const (
	Rat Zodiac = iota
	Buffalo
	Tiger
	Cat
	Dragon
	Snake
	Horse
	Goat
	Monkey
	Chicken
	Dog
	Pig
)

// mod returns n modulo m in [0, m).
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// StemFromOrdinal returns the stem at position n of the cycle, reduced
// modulo 10.
func StemFromOrdinal(n int) Stem {
	return Stem(mod(n, 10))
}

// Ordinal returns the position of s in the cycle, in [0, 9].
func (s Stem) Ordinal() int {
	return mod(int(s), 10)
}

// String returns "HS1" through "HS10".
func (s Stem) String() string {
	return fmt.Sprintf("HS%d", s.Ordinal()+1)
}

// Stems alternate yang and yin and advance one element every two steps:
// wood, fire, earth, metal, water.
var stemElements = [10]Element{Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water}

// Element returns the element of s.
func (s Stem) Element() Element {
	return stemElements[s.Ordinal()]
}

// Polarity returns Yang for odd-numbered stems and Yin for even ones.
func (s Stem) Polarity() Polarity {
	if s.Ordinal()%2 == 0 {
		return Yang
	}
	return Yin
}

// BranchFromOrdinal returns the branch at position n of the cycle, reduced
// modulo 12.
func BranchFromOrdinal(n int) Branch {
	return Branch(mod(n, 12))
}

// Ordinal returns the position of b in the cycle, in [0, 11].
func (b Branch) Ordinal() int {
	return mod(int(b), 12)
}

// String returns "EB1" through "EB12".
func (b Branch) String() string {
	return fmt.Sprintf("EB%d", b.Ordinal()+1)
}

var branchElements = [12]Element{Water, Earth, Wood, Wood, Earth, Fire, Fire, Earth, Metal, Fire, Earth, Water}

var branchPolarities = [12]Polarity{Yang, Yin, Yang, Yin, Yang, Yin, Yang, Yin, Yang, Yin, Yang, Yin}

// Element returns the element of b.
func (b Branch) Element() Element {
	return branchElements[b.Ordinal()]
}

// Polarity returns the polarity of b.
func (b Branch) Polarity() Polarity {
	return branchPolarities[b.Ordinal()]
}

// Zodiac returns the animal of b.
func (b Branch) Zodiac() Zodiac {
	return Zodiac(b.Ordinal())
}

// Branch returns the earthly branch whose animal is z.
func (z Zodiac) Branch() Branch {
	return BranchFromOrdinal(int(z))
}

// Pair is a stem and branch labelling one slot (year, month, day or hour)
// of the sexagenary cycle.
type Pair struct {
	Stem   Stem
	Branch Branch
}

// String returns the pair as "HS7-EB3".
func (p Pair) String() string {
	return p.Stem.String() + "-" + p.Branch.String()
}

// Index returns the position of p in the sixty-slot cycle, or -1 if the
// stem and branch have different parity and so never occur together.
func (p Pair) Index() int {
	s, b := p.Stem.Ordinal(), p.Branch.Ordinal()
	if s%2 != b%2 {
		return -1
	}
	// The slot i satisfies i ≡ s (mod 10) and i ≡ b (mod 12).
	for i := s; i < 60; i += 10 {
		if i%12 == b {
			return i
		}
	}
	return -1
}

// PairFromIndex returns the pair at position n of the sixty-slot cycle.
func PairFromIndex(n int) Pair {
	return Pair{Stem: StemFromOrdinal(n), Branch: BranchFromOrdinal(n)}
}

// Labels holds the four sexagenary labels of an instant.
type Labels struct {
	Year  Pair
	Month Pair
	Day   Pair
	Hour  Pair
}

// epochDay is the day number of 1900-01-01, from which day labels count.
var epochDay = JulianDayNumber(1, 1, 1900)

// YearPair returns the label of lunisolar year.
func YearPair(year int) Pair {
	return Pair{
		Stem:   StemFromOrdinal(year + 6),
		Branch: BranchFromOrdinal(year + 8),
	}
}

// MonthPair returns the label of lunisolar month of lunisolar year. A leap
// month shares the label of the regular month with the same number.
func MonthPair(year, month int) Pair {
	return Pair{
		Stem:   StemFromOrdinal(year*12 + month + 3),
		Branch: BranchFromOrdinal(month + 1),
	}
}

// DayPair returns the label of the solar date day/month/year.
func DayPair(day, month, year int) Pair {
	n := int(JulianDayNumber(day, month, year) - epochDay)
	return Pair{
		Stem:   StemFromOrdinal(n),
		Branch: BranchFromOrdinal(n + 10),
	}
}

// HourPair returns the label of the two-hour period containing hour on the
// solar date day/month/year. Hours 23 and 0 share a branch; the stem is
// taken from the solar date's own day stem.
func HourPair(hour, day, month, year int) Pair {
	dayStem := DayPair(day, month, year).Stem
	h := hour + 1
	if h >= 24 {
		h = 0
	}
	return Pair{
		Stem:   StemFromOrdinal(h/2 + 2*dayStem.Ordinal()),
		Branch: BranchFromOrdinal((hour + 1) / 2),
	}
}

// LabelsOf returns the sexagenary labels of hour on the solar date
// day/month/year, given its lunisolar date ld.
func LabelsOf(ld Date, hour, day, month, year int) Labels {
	return Labels{
		Year:  YearPair(ld.Year),
		Month: MonthPair(ld.Year, ld.Month),
		Day:   DayPair(day, month, year),
		Hour:  HourPair(hour, day, month, year),
	}
}
