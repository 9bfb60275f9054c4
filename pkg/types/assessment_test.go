package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalQualityScore(t *testing.T) {
	tests := []struct {
		name   string
		scores [4]uint8
		want   uint8
	}{
		{"truncates the mean", [4]uint8{80, 70, 90, 60}, 75},
		{"all equal", [4]uint8{50, 50, 50, 50}, 50},
		{"remainder dropped", [4]uint8{1, 1, 1, 0}, 0},
		{"max scores", [4]uint8{100, 100, 100, 100}, 100},
		{"sum exceeds uint8", [4]uint8{100, 100, 100, 99}, 99},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FinalQualityScore(tc.scores[0], tc.scores[1], tc.scores[2], tc.scores[3])
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQualityAssessmentValidate(t *testing.T) {
	valid := QualityAssessment{
		RecordID:     1,
		Assessor:     "op",
		Completeness: 80,
		Accuracy:     70,
		Timeliness:   90,
		Consistency:  60,
		FinalScore:   75,
	}
	assert.NoError(t, valid.Validate())

	overScored := valid
	overScored.Completeness = 101
	assert.ErrorIs(t, overScored.Validate(), ErrInvalidData)

	drifted := valid
	drifted.FinalScore = 80
	assert.ErrorIs(t, drifted.Validate(), ErrInvalidData, "final score must match the sub-scores")

	verbose := valid
	verbose.Notes = strings.Repeat("x", MaxLongTextLen+1)
	assert.ErrorIs(t, verbose.Validate(), ErrInvalidData)
}
