package heli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNgramTablePutLookup(t *testing.T) {
	tab := NewNgramTable(Trigram, 4)
	tab.Put("the", LangScore{Lang: MustLang("eng_Latn"), Score: 1.5})
	tab.Put("the", LangScore{Lang: MustLang("nld_Latn"), Score: 3.2})
	tab.Put("der", LangScore{Lang: MustLang("deu_Latn"), Score: 0.9})

	pairs, ok := tab.Lookup("the")
	require.True(t, ok)
	assert.Len(t, pairs, 2)

	_, ok = tab.Lookup("das")
	assert.False(t, ok)

	assert.Equal(t, 2, tab.Len())
	assert.Equal(t, Trigram, tab.Order())
}

func TestNgramTableGrows(t *testing.T) {
	tab := NewNgramTable(Unigram, 4)
	for _, l := range Langs() {
		tab.Put(l.Code(), LangScore{Lang: l, Score: float32(l)})
	}
	assert.Equal(t, NumLangs(), tab.Len())
	for _, l := range Langs() {
		pairs, ok := tab.Lookup(l.Code())
		require.True(t, ok)
		require.Len(t, pairs, 1)
		assert.Equal(t, l, pairs[0].Lang)
	}
}

func TestNgramTableWriteReadRoundTrip(t *testing.T) {
	tab := NewNgramTable(Bigram, 4)
	tab.Put("ab", LangScore{Lang: MustLang("eng_Latn"), Score: 1.25})
	tab.Put("ab", LangScore{Lang: MustLang("fra_Latn"), Score: 4.0})
	tab.Put("cd", LangScore{Lang: MustLang("spa_Latn"), Score: 2.5})

	var buf bytes.Buffer
	_, err := tab.WriteTo(&buf)
	require.NoError(t, err)

	got, err := ReadNgramTable(&buf, Bigram)
	require.NoError(t, err)
	assert.Equal(t, tab.Len(), got.Len())

	pairs, ok := got.Lookup("ab")
	require.True(t, ok)
	assert.ElementsMatch(t, []LangScore{
		{Lang: MustLang("eng_Latn"), Score: 1.25},
		{Lang: MustLang("fra_Latn"), Score: 4.0},
	}, pairs)
}

func TestNgramTableReadRejectsOrderMismatch(t *testing.T) {
	tab := NewNgramTable(Bigram, 4)
	tab.Put("ab", LangScore{Lang: MustLang("eng_Latn"), Score: 1.0})

	var buf bytes.Buffer
	_, err := tab.WriteTo(&buf)
	require.NoError(t, err)

	_, err = ReadNgramTable(&buf, Trigram)
	require.Error(t, err)
	var integrityErr *IntegrityError
	assert.ErrorAs(t, err, &integrityErr)
}

func TestNgramTableReadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("not-a-heli-snapshot-at-all")
	_, err := ReadNgramTable(buf, Word)
	require.Error(t, err)
}
