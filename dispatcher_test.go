package heli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelDispatcherPreservesOrder(t *testing.T) {
	bundle := testBundle(t)
	dispatcher := NewParallelDispatcher(bundle, 4)

	texts := []string{"hello", "hola", "world", "mundo", "hello world"}
	results, err := dispatcher.Identify(texts, true)
	require.NoError(t, err)
	require.Len(t, results, len(texts))

	assert.Equal(t, MustLang("eng_Latn"), results[0].Lang)
	assert.Equal(t, MustLang("spa_Latn"), results[1].Lang)
	assert.Equal(t, MustLang("eng_Latn"), results[2].Lang)
	assert.Equal(t, MustLang("spa_Latn"), results[3].Lang)
	assert.Equal(t, MustLang("eng_Latn"), results[4].Lang)
}

func TestParallelDispatcherMatchesSerialIdentify(t *testing.T) {
	bundle := testBundle(t)
	dispatcher := NewParallelDispatcher(bundle, 3)
	engine := NewScoringEngine(bundle)

	texts := []string{"hello", "hola", "world"}
	results, err := dispatcher.Identify(texts, false)
	require.NoError(t, err)

	for i, text := range texts {
		lang, score := engine.Identify(text, false)
		assert.Equal(t, lang, results[i].Lang)
		assert.Equal(t, score, results[i].Score)
	}
}

func TestParallelDispatcherTopK(t *testing.T) {
	bundle := testBundle(t)
	dispatcher := NewParallelDispatcher(bundle, 2)

	results, err := dispatcher.IdentifyTopK([]string{"hello", "hola"}, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, MustLang("eng_Latn"), results[0][0].Lang)
	assert.Equal(t, MustLang("spa_Latn"), results[1][0].Lang)
}
