package scoring

import (
	"strings"
	"unicode"
)

// ClassFunc maps a segment to its sound class.
type ClassFunc func(segment string) string

// Dolgopolsky-style sound classes.
const (
	ClassLabial    = "P" // labial obstruents
	ClassDental    = "T" // dental obstruents
	ClassSibilant  = "S" // sibilants
	ClassVelar     = "K" // velar obstruents and affricates
	ClassM         = "M" // labial nasal
	ClassN         = "N" // other nasals
	ClassLiquid    = "R" // liquids
	ClassW         = "W" // labial approximants
	ClassJ         = "J" // palatal approximant
	ClassLaryngeal = "H" // laryngeals
	ClassVowel     = "V" // vowels
	ClassUnknown   = "0" // anything else
)

// dolgoBase maps the base character of a segment to its class.
var dolgoBase = map[rune]string{
	'p': ClassLabial, 'b': ClassLabial, 'f': ClassLabial, 'ɸ': ClassLabial, 'β': ClassLabial,
	't': ClassDental, 'd': ClassDental, 'θ': ClassDental, 'ð': ClassDental, 'ʈ': ClassDental, 'ɖ': ClassDental,
	's': ClassSibilant, 'z': ClassSibilant, 'ʃ': ClassSibilant, 'ʒ': ClassSibilant,
	'ʂ': ClassSibilant, 'ʐ': ClassSibilant, 'ɕ': ClassSibilant, 'ʑ': ClassSibilant,
	'k': ClassVelar, 'g': ClassVelar, 'ɡ': ClassVelar, 'q': ClassVelar, 'ɢ': ClassVelar,
	'x': ClassVelar, 'ɣ': ClassVelar, 'χ': ClassVelar, 'ʁ': ClassVelar, 'c': ClassVelar, 'ɟ': ClassVelar,
	'm': ClassM, 'ɱ': ClassM,
	'n': ClassN, 'ɲ': ClassN, 'ŋ': ClassN, 'ɳ': ClassN, 'ɴ': ClassN,
	'r': ClassLiquid, 'l': ClassLiquid, 'ɾ': ClassLiquid, 'ɹ': ClassLiquid, 'ɭ': ClassLiquid,
	'ʎ': ClassLiquid, 'ɫ': ClassLiquid, 'ɽ': ClassLiquid, 'ʀ': ClassLiquid, 'ɻ': ClassLiquid,
	'w': ClassW, 'v': ClassW, 'ʋ': ClassW,
	'j': ClassJ,
	'h': ClassLaryngeal, 'ɦ': ClassLaryngeal, 'ʔ': ClassLaryngeal, 'ħ': ClassLaryngeal, 'ʕ': ClassLaryngeal,
}

const dolgoVowels = "aeiouyəɛɔæɑɒɪʊɨʉɯøœɐʌɜɤɵɘ"

// affricatePrefixes are dental onsets that, followed by a sibilant, form
// an affricate (class K).
var affricatePrefixes = []string{"ts", "tʃ", "tɕ", "tʂ", "dz", "dʒ", "dʑ", "dʐ"}

// DolgoClass returns the Dolgopolsky-style class of segment. Diacritics,
// length marks and modifier letters are ignored; the first remaining letter
// decides the class. Affricates map to K, vowels to V, anything else to 0.
func DolgoClass(segment string) string {
	base := baseLetters(segment)
	if base == "" {
		return ClassUnknown
	}
	for _, p := range affricatePrefixes {
		if strings.HasPrefix(base, p) {
			return ClassVelar
		}
	}
	first := []rune(base)[0]
	if cls, ok := dolgoBase[first]; ok {
		return cls
	}
	if strings.ContainsRune(dolgoVowels, first) {
		return ClassVowel
	}

	return ClassUnknown
}

// baseLetters drops combining marks, modifier letters and symbols,
// then lower-cases what is left.
func baseLetters(segment string) string {
	var b strings.Builder
	for _, r := range segment {
		if unicode.In(r, unicode.Mn, unicode.Lm, unicode.Sk) || !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Classes converts every segment of seq with fn.
func Classes(seq []string, fn ClassFunc) []string {
	out := make([]string, len(seq))
	for i, seg := range seq {
		out[i] = fn(seg)
	}

	return out
}

// ClassScorer scores segments by scoring their sound classes with an inner
// Scorer. Gap penalties come from the inner Scorer.
type ClassScorer struct {
	classes ClassFunc
	inner   Scorer
}

var _ Scorer = ClassScorer{}

// NewClassScorer wraps inner. A nil classes function defaults to DolgoClass.
func NewClassScorer(classes ClassFunc, inner Scorer) (ClassScorer, error) {
	if inner == nil {
		return ClassScorer{}, ErrNilScorer
	}
	if classes == nil {
		classes = DolgoClass
	}

	return ClassScorer{classes: classes, inner: inner}, nil
}

// Score implements Scorer.
func (s ClassScorer) Score(a, b string) float64 {
	return s.inner.Score(s.classes(a), s.classes(b))
}

// GapOpen implements Scorer.
func (s ClassScorer) GapOpen() float64 { return s.inner.GapOpen() }

// GapExtend implements Scorer.
func (s ClassScorer) GapExtend() float64 { return s.inner.GapExtend() }

// DolgoMatrix returns the default class table: consonant classes match with
// 10, vowels with 5, laryngeals with 2; labial/approximant and
// dental/sibilant neighbours score 2; everything else -10. Gaps open at -10
// and extend at -5.
func DolgoMatrix() *Matrix {
	consonants := []string{ClassLabial, ClassDental, ClassSibilant, ClassVelar,
		ClassM, ClassN, ClassLiquid, ClassW, ClassJ}
	entries := make(map[string]map[string]float64)
	put := func(a, b string, v float64) {
		if entries[a] == nil {
			entries[a] = make(map[string]float64)
		}
		entries[a][b] = v
	}
	for _, c := range consonants {
		put(c, c, 10)
	}
	put(ClassVowel, ClassVowel, 5)
	put(ClassLaryngeal, ClassLaryngeal, 2)
	put(ClassLabial, ClassW, 2)
	put(ClassDental, ClassSibilant, 2)
	put(ClassM, ClassN, 2)
	put(ClassW, ClassVowel, -3)
	put(ClassJ, ClassVowel, -3)

	m, err := NewMatrix(entries,
		WithGapOpen(-10),
		WithGapExtend(-5),
		WithDefaultMismatch(-10),
	)
	if err != nil {
		// Constant table; a failure here is a programming error.
		panic(err)
	}

	return m
}

// DefaultSCA returns a ClassScorer over DolgoClass and DolgoMatrix.
func DefaultSCA() ClassScorer {
	return ClassScorer{classes: DolgoClass, inner: DolgoMatrix()}
}
