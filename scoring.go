package heli

// PENALTY is added to a language's score for every gram that does not
// list it, and is the reported score for a text that fails to preprocess.
const PENALTY float32 = 7.0

// MaxNgram is the longest character n-gram order scored before falling
// back to shorter windows.
const MaxNgram = 6

// ScoringEngine is the stateful, per-worker object that scores one text
// at a time against a shared ModelBundle. It owns its three scratch
// vectors exclusively; the bundle is read-only and may be shared by many
// engines at once.
type ScoringEngine struct {
	bundle *ModelBundle

	langPoints ScoreVector
	wordScores ScoreVector
	langScored LangBitmap

	numWords int
}

// NewScoringEngine creates an engine bound to bundle with freshly
// allocated scratch state.
func NewScoringEngine(bundle *ModelBundle) *ScoringEngine {
	return &ScoringEngine{
		bundle:     bundle,
		langPoints: NewScoreVector(),
		wordScores: NewScoreVector(),
		langScored: NewLangBitmap(),
	}
}

// scoreGram looks gram up in the table for order. On a miss it leaves
// wordScores untouched and returns false. On a hit it adds each listed
// language's score into wordScores and marks it scored, then adds PENALTY
// to every language that gram did not list (a conditional add per
// language; the loop is not branch-free).
func (e *ScoringEngine) scoreGram(gram string, order OrderNgram) bool {
	pairs, ok := e.bundle.Table(order).Lookup(gram)
	if !ok {
		return false
	}
	e.langScored.Reset()
	for _, p := range pairs {
		e.wordScores.Add(p.Lang, p.Score)
		e.langScored.Set(p.Lang, true)
	}
	for _, l := range Langs() {
		if !e.langScored.Get(l) {
			e.wordScores.Add(l, PENALTY)
		}
	}
	return true
}

// shingles returns every contiguous window of length order within s.
func shingles(s string, order int) []string {
	r := []rune(s)
	if len(r) < order {
		return nil
	}
	out := make([]string, 0, len(r)-order+1)
	for i := 0; i+order <= len(r); i++ {
		out = append(out, string(r[i:i+order]))
	}
	return out
}

// scoreWord resets wordScores, tries the whole-word table, and otherwise
// walks character n-gram orders from MaxNgram down to 1, stopping at the
// first order with any hit.
func (e *ScoringEngine) scoreWord(word string) {
	e.wordScores.Reset()

	if e.scoreGram(word, Word) {
		e.langPoints.AddVector(e.wordScores)
		e.numWords++
		return
	}

	padded := " " + word + " "
	for order := MaxNgram; order >= 1; order-- {
		windows := shingles(padded, order)
		hits := 0
		for _, w := range windows {
			if e.scoreGram(w, OrderNgram(order)) {
				hits++
			}
		}
		if hits > 0 {
			e.wordScores.DivScalar(float32(hits))
			break
		}
	}

	e.langPoints.AddVector(e.wordScores)
	e.numWords++
}

// scoreLangs preprocesses text, scores every token, normalizes by word
// count, and applies the CJK-coverage penalty. It returns false when the
// text has no scorable tokens.
func (e *ScoringEngine) scoreLangs(text string) (bool, error) {
	pre, err := Preprocess(text)
	if err != nil {
		return false, err
	}
	tokens := tokenize(pre.Normalized)
	if len(tokens) == 0 {
		return false, nil
	}

	e.langPoints.Reset()
	e.numWords = 0
	for _, tok := range tokens {
		e.scoreWord(tok)
	}
	e.langPoints.DivScalar(float32(e.numWords))

	var cjkPct float32
	if pre.MysteryLength > 0 {
		cjkPct = float32(pre.CJKChars) / float32(pre.MysteryLength)
	}
	if cjkPct > 0.5 {
		for _, l := range Langs() {
			if !l.IsCJK() {
				e.langPoints.Set(l, PENALTY+1.0)
			}
		}
	}
	return true, nil
}

func tokenize(s string) []string {
	var tokens []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		if r == ' ' {
			flush()
			continue
		}
		cur = append(cur, r)
	}
	flush()
	return tokens
}
