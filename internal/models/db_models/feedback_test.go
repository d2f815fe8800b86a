package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingValidators(t *testing.T) {
	assert.True(t, ValidSatisfaction("Very satisfied"))
	assert.False(t, ValidSatisfaction("very satisfied"))

	assert.True(t, ValidResolutionMet("Partially"))
	assert.False(t, ValidResolutionMet("Kind of"))

	assert.True(t, ValidUpdates("Sometimes"))
	assert.False(t, ValidUpdates(""))

	assert.True(t, ValidRecommendation("Maybe"))
	assert.False(t, ValidRecommendation("Definitely"))
}

func TestSatisfactionScore(t *testing.T) {
	cases := map[string]int{
		"Very satisfied":   5,
		"Satisfied":        4,
		"Neutral":          3,
		"Unsatisfied":      2,
		"Very unsatisfied": 1,
		"garbage":          0,
	}
	for answer, want := range cases {
		f := Feedback{Satisfaction: answer}
		assert.Equal(t, want, f.SatisfactionScore(), answer)
	}
}
