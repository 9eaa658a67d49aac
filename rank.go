package heli

import "sort"

// pickWinner scans langPoints for the minimum score, ties broken by Lang
// iteration order, collapses the winner to its macrolanguage, and
// compares the gap to the runner-up against the confidence threshold.
// When confidence is enabled and the gap does not
// clear the winner's threshold, the returned Lang is LangUnd but the
// numeric gap is still reported.
func (e *ScoringEngine) pickWinner(useConfidence bool) (Lang, float32) {
	var winner Lang
	winnerScore := float32(0)
	first := true
	for _, l := range Langs() {
		s := e.langPoints.Get(l)
		if first || s < winnerScore {
			winner = l
			winnerScore = s
			first = false
		}
	}

	collapsed := winner.Collapse()
	runnerUp := float32(0)
	haveRunnerUp := false
	for _, l := range Langs() {
		if l.Collapse() == collapsed {
			continue
		}
		s := e.langPoints.Get(l)
		if !haveRunnerUp || s < runnerUp {
			runnerUp = s
			haveRunnerUp = true
		}
	}

	if !useConfidence {
		return collapsed, winnerScore
	}

	gap := runnerUp - winnerScore
	if e.bundle.Confidence(collapsed) > gap {
		return LangUnd, gap
	}
	return collapsed, gap
}

// rankLangs returns the k lowest-scoring languages in ascending score
// order, ties within a tied group broken by Lang enum order, with no
// confidence filtering applied.
func (e *ScoringEngine) rankLangs(k int) []LangScore {
	all := make([]LangScore, NumLangs())
	for i, l := range Langs() {
		all[i] = LangScore{Lang: l, Score: e.langPoints.Get(l)}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score < all[j].Score
		}
		return all[i].Lang < all[j].Lang
	})
	if k < len(all) {
		all = all[:k]
	}
	return all
}

// Identify scores text and returns a single (Lang, score) prediction. If
// the text has no scorable content it returns (und, PENALTY). Otherwise
// ignoreConfidence selects between the raw winner score and the
// confidence-gated runner-up gap.
func (e *ScoringEngine) Identify(text string, ignoreConfidence bool) (Lang, float32) {
	ok, err := e.scoreLangs(text)
	if err != nil || !ok {
		return LangUnd, PENALTY
	}
	return e.pickWinner(!ignoreConfidence)
}

// IdentifyTopK scores text and returns up to k candidates in ascending
// score order, with no confidence filtering.
func (e *ScoringEngine) IdentifyTopK(text string, k int) []LangScore {
	ok, err := e.scoreLangs(text)
	if err != nil || !ok {
		return []LangScore{{Lang: LangUnd, Score: PENALTY}}
	}
	return e.rankLangs(k)
}
