package heli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreVectorAddReset(t *testing.T) {
	v := NewScoreVector()
	eng := MustLang("eng_Latn")
	spa := MustLang("spa_Latn")

	v.Add(eng, 1.5)
	v.Add(eng, 0.5)
	v.Add(spa, 2.0)
	assert.Equal(t, float32(2.0), v.Get(eng))
	assert.Equal(t, float32(2.0), v.Get(spa))

	v.Reset()
	for _, l := range Langs() {
		assert.Equal(t, float32(0), v.Get(l))
	}
}

func TestScoreVectorAddVectorAndDivScalar(t *testing.T) {
	a := NewScoreVector()
	b := NewScoreVector()
	eng := MustLang("eng_Latn")
	a.Set(eng, 4)
	b.Set(eng, 6)
	a.AddVector(b)
	assert.Equal(t, float32(10), a.Get(eng))

	a.DivScalar(2)
	assert.Equal(t, float32(5), a.Get(eng))
}

func TestLangBitmapSetGet(t *testing.T) {
	b := NewLangBitmap()
	eng := MustLang("eng_Latn")
	assert.False(t, b.Get(eng))
	b.Set(eng, true)
	assert.True(t, b.Get(eng))
	b.Reset()
	assert.False(t, b.Get(eng))
}
