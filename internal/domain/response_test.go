package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScore(t *testing.T) {
	// Cobre as 11 notas possíveis: faixas exaustivas e mutuamente exclusivas
	expected := map[int]ScoreBand{
		0:  BandDetractor,
		1:  BandDetractor,
		2:  BandDetractor,
		3:  BandDetractor,
		4:  BandDetractor,
		5:  BandDetractor,
		6:  BandDetractor,
		7:  BandPassive,
		8:  BandPassive,
		9:  BandPromoter,
		10: BandPromoter,
	}

	for score, band := range expected {
		assert.Equal(t, band, ClassifyScore(score), "nota %d", score)
	}
}

func TestValidScore(t *testing.T) {
	for score := MinScore; score <= MaxScore; score++ {
		assert.True(t, ValidScore(score), "nota %d deveria ser válida", score)
	}

	assert.False(t, ValidScore(-1))
	assert.False(t, ValidScore(11))
	assert.False(t, ValidScore(100))
}

func TestResponseBand(t *testing.T) {
	r := &Response{Score: 9}
	assert.Equal(t, BandPromoter, r.Band())

	r.Score = 7
	assert.Equal(t, BandPassive, r.Band())

	r.Score = 0
	assert.Equal(t, BandDetractor, r.Band())
}
