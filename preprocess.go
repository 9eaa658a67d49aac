package heli

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/rangetable"
)

// allowListRunes are the individual codepoints retained by the
// non-alphabetic replacement pass beyond \p{L} and \p{M}: apostrophe-like
// punctuation used mid-word in several Latin-script languages, plus a
// handful of Gujarati and Thaana signs, vowel signs and one letter. Of
// these only APOSTROPHE and RIGHT SINGLE QUOTATION MARK fall outside \p{L}
// and \p{M}; the other entries are letters or marks already kept by that
// test and are listed explicitly. This list is part of the wire contract: changing
// it shifts every downstream score. See DESIGN.md.
var allowListRunes = []rune{
	'\'',     // APOSTROPHE
	'’', // RIGHT SINGLE QUOTATION MARK
	'ʼ', // MODIFIER LETTER APOSTROPHE
	'ઁ', // GUJARATI SIGN CANDRABINDU
	'ં', // GUJARATI SIGN ANUSVARA
	'ઃ', // GUJARATI SIGN VISARGA
	'ા', // GUJARATI VOWEL SIGN AA
	'િ', // GUJARATI VOWEL SIGN I
	'ી', // GUJARATI VOWEL SIGN II
	'ુ', // GUJARATI VOWEL SIGN U
	'ૂ', // GUJARATI VOWEL SIGN UU
	'ૉ', // GUJARATI VOWEL SIGN CANDRA O
	'ો', // GUJARATI VOWEL SIGN O
	'ૌ', // GUJARATI VOWEL SIGN AU
	'ހ', // THAANA LETTER HAA (word-internal diacritic carrier)
	'ަ', // THAANA ABAFILI
	'ާ', // THAANA AABAAFILI
	'ި', // THAANA IBIFILI
	'ީ', // THAANA EEBEEFILI
	'ު', // THAANA UBUFILI
	'ޫ', // THAANA OOBOOFILI
	'ެ', // THAANA EBEFILI
	'ޭ', // THAANA EYBEYFILI
	'ޮ', // THAANA OBOFILI
	'ޯ', // THAANA OABOAFILI
}

var allowListTable = rangetable.New(allowListRunes...)

func isAllowedNonAlpha(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.Is(allowListTable, r)
}

// cjkBlockTable is the union of the 17 CJK ideograph blocks used for the
// preprocessor's boundary-insertion and coverage-counting passes.
// Hangul and Kana are deliberately excluded: this is load-bearing for
// mixed Japanese/Korean text.
var cjkBlockTable = rangetable.Merge(
	rangeTable(0x4E00, 0x9FFF),   // CJK Unified Ideographs
	rangeTable(0x3400, 0x4DBF),   // CJK Unified Ideographs Extension A
	rangeTable(0x20000, 0x2A6DF), // CJK Unified Ideographs Extension B
	rangeTable(0x2A700, 0x2B73F), // CJK Unified Ideographs Extension C
	rangeTable(0x2B740, 0x2B81F), // CJK Unified Ideographs Extension D
	rangeTable(0x2B820, 0x2CEAF), // CJK Unified Ideographs Extension E
	rangeTable(0x2CEB0, 0x2EBEF), // CJK Unified Ideographs Extension F
	rangeTable(0x30000, 0x3134F), // CJK Unified Ideographs Extension G
	rangeTable(0x31350, 0x323AF), // CJK Unified Ideographs Extension H
	rangeTable(0x2EBF0, 0x2EE5F), // CJK Unified Ideographs Extension I
	rangeTable(0xF900, 0xFAFF),   // CJK Compatibility Ideographs
	rangeTable(0x2F800, 0x2FA1F), // CJK Compatibility Ideographs Supplement
	rangeTable(0xFE30, 0xFE4F),   // CJK Compatibility Forms
	rangeTable(0x3300, 0x33FF),   // CJK Compatibility
	rangeTable(0x2E80, 0x2EFF),   // CJK Radicals Supplement
	rangeTable(0x31C0, 0x31EF),   // CJK Strokes
	rangeTable(0x3000, 0x303F),   // CJK Symbols and Punctuation
)

// rangeTable builds a single-interval *unicode.RangeTable for [lo, hi],
// picking the 16- or 32-bit range representation as unicode.RangeTable
// itself does.
func rangeTable(lo, hi rune) *unicode.RangeTable {
	if hi <= 0xFFFF {
		return &unicode.RangeTable{
			R16: []unicode.Range16{{Lo: uint16(lo), Hi: uint16(hi), Stride: 1}},
		}
	}
	return &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: uint32(lo), Hi: uint32(hi), Stride: 1}},
	}
}

func isCJKRune(r rune) bool { return unicode.Is(cjkBlockTable, r) }

var lowerCaser = cases.Lower(language.Und)

// PreprocessResult is the normalized form of one input text plus the two
// counters the scoring engine and CJK-coverage penalty need.
type PreprocessResult struct {
	Normalized    string
	CJKChars      int
	MysteryLength int
}

// Preprocess lowercases text, replaces every non-alphabetic,
// non-allow-listed codepoint with a single space, inserts a synthetic
// space at every CJK/non-CJK boundary, and counts CJK codepoints and
// non-space codepoints. The error return exists for the unclassifiable-
// codepoint case, which should not occur for valid input; Go's unicode
// tables always classify a valid rune, so callers should still check err
// rather than assume nil.
func Preprocess(text string) (PreprocessResult, error) {
	lowered := lowerCaser.String(text)

	var replaced strings.Builder
	replaced.Grow(len(lowered))
	for _, r := range lowered {
		if isAllowedNonAlpha(r) {
			replaced.WriteRune(r)
		} else {
			replaced.WriteRune(' ')
		}
	}

	var out strings.Builder
	out.Grow(replaced.Len())
	var cjkChars, mysteryLength int
	lastWasCJK := false
	lastWasSpace := true // treat start-of-string like a space boundary
	for _, r := range replaced.String() {
		thisIsCJK := isCJKRune(r)
		thisIsSpace := r == ' '

		if !thisIsSpace {
			if thisIsCJK != lastWasCJK && !lastWasSpace {
				out.WriteRune(' ')
			}
		}
		out.WriteRune(r)

		if !thisIsSpace {
			mysteryLength++
			if thisIsCJK {
				cjkChars++
			}
		}
		if !thisIsSpace {
			lastWasCJK = thisIsCJK
		}
		lastWasSpace = thisIsSpace
	}

	return PreprocessResult{
		Normalized:    out.String(),
		CJKChars:      cjkChars,
		MysteryLength: mysteryLength,
	}, nil
}
