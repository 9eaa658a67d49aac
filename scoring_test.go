package heli

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle(t *testing.T) *ModelBundle {
	t.Helper()
	bundle, err := BuildModelBundleFromText(testModelDir, false)
	require.NoError(t, err)
	return bundle
}

func TestIdentifyWordLevelHit(t *testing.T) {
	engine := NewScoringEngine(testBundle(t))

	lang, score := engine.Identify("hello", true)
	assert.Equal(t, MustLang("eng_Latn"), lang)
	wantScore := float32(-math.Log10(500.0 / 800.0))
	assert.InDelta(t, wantScore, score, 1e-5)
}

func TestIdentifyConfidenceEnabledReportsGap(t *testing.T) {
	engine := NewScoringEngine(testBundle(t))

	lang, gap := engine.Identify("hello", false)
	assert.Equal(t, MustLang("eng_Latn"), lang)
	assert.Greater(t, gap, float32(0))
}

func TestIdentifyNoScorableContentReturnsUnd(t *testing.T) {
	engine := NewScoringEngine(testBundle(t))
	lang, score := engine.Identify("@@@ !!! ???", true)
	assert.Equal(t, LangUnd, lang)
	assert.Equal(t, PENALTY, score)
}

func TestIdentifyTopKIsPrefixOfLargerK(t *testing.T) {
	engine := NewScoringEngine(testBundle(t))
	full := engine.IdentifyTopK("hello world", NumLangs())
	small := engine.IdentifyTopK("hello world", 3)
	require.Len(t, small, 3)
	for i := range small {
		assert.Equal(t, full[i], small[i])
	}
}

func TestIdentifyDeterministicAcrossEngines(t *testing.T) {
	bundle := testBundle(t)
	e1 := NewScoringEngine(bundle)
	e2 := NewScoringEngine(bundle)

	l1, s1 := e1.Identify("hello world", true)
	l2, s2 := e2.Identify("hello world", true)
	assert.Equal(t, l1, l2)
	assert.Equal(t, s1, s2)
}

func TestScoreLangsNormalizesByWordCount(t *testing.T) {
	engine := NewScoringEngine(testBundle(t))
	ok, err := engine.scoreLangs("hello world")
	require.NoError(t, err)
	require.True(t, ok)
	for _, l := range Langs() {
		v := engine.langPoints.Get(l)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, PENALTY+1.0)
	}
}
