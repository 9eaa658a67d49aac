package heli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocessLowercasesAndStripsPunctuation(t *testing.T) {
	res, err := Preprocess("Hola, ¿qué tal?")
	require.NoError(t, err)
	assert.NotContains(t, res.Normalized, ",")
	assert.NotContains(t, res.Normalized, "¿")
	assert.Contains(t, res.Normalized, "hola")
	assert.Contains(t, res.Normalized, "qué")
}

func TestPreprocessApostropheRetained(t *testing.T) {
	res, err := Preprocess("L'aigua clara")
	require.NoError(t, err)
	assert.Contains(t, res.Normalized, "l'aigua")
}

func TestPreprocessCJKBoundaryInsertion(t *testing.T) {
	res, err := Preprocess("hello世界world")
	require.NoError(t, err)
	assert.Equal(t, "hello 世界 world", res.Normalized)
	assert.Equal(t, 2, res.CJKChars)
}

func TestPreprocessCJKCountExcludesHangulAndKana(t *testing.T) {
	res, err := Preprocess("世界한글かな")
	require.NoError(t, err)
	assert.Equal(t, 2, res.CJKChars)
	assert.Equal(t, 6, res.MysteryLength)
}

func TestPreprocessMysteryLengthCountsNonSpace(t *testing.T) {
	res, err := Preprocess("a b  c")
	require.NoError(t, err)
	assert.Equal(t, 3, res.MysteryLength)
}

func TestPreprocessEmptyInput(t *testing.T) {
	res, err := Preprocess("")
	require.NoError(t, err)
	assert.Equal(t, 0, res.MysteryLength)
	assert.Equal(t, 0, res.CJKChars)
}
