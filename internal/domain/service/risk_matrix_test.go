package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sue-zadeh/fieldbase/internal/domain/service"
)

// The full 5x5 matrix, row by row. Kept literal so a table change is a
// deliberate, visible diff.
var matrixCases = []struct {
	likelihood  service.Likelihood
	consequence service.Consequence
	want        service.RatingLabel
}{
	{service.HighlyUnlikely, service.Insignificant, service.LowRisk},
	{service.HighlyUnlikely, service.Minor, service.LowRisk},
	{service.HighlyUnlikely, service.Moderate, service.LowRisk},
	{service.HighlyUnlikely, service.Major, service.ModerateRisk},
	{service.HighlyUnlikely, service.Catastrophic, service.HighRisk},

	{service.Unlikely, service.Insignificant, service.LowRisk},
	{service.Unlikely, service.Minor, service.ModerateRisk},
	{service.Unlikely, service.Moderate, service.ModerateRisk},
	{service.Unlikely, service.Major, service.HighRisk},
	{service.Unlikely, service.Catastrophic, service.HighRisk},

	{service.QuitePossible, service.Insignificant, service.LowRisk},
	{service.QuitePossible, service.Minor, service.ModerateRisk},
	{service.QuitePossible, service.Moderate, service.HighRisk},
	{service.QuitePossible, service.Major, service.HighRisk},
	{service.QuitePossible, service.Catastrophic, service.ExtremeRisk},

	{service.Likely, service.Insignificant, service.ModerateRisk},
	{service.Likely, service.Minor, service.HighRisk},
	{service.Likely, service.Moderate, service.HighRisk},
	{service.Likely, service.Major, service.ExtremeRisk},
	{service.Likely, service.Catastrophic, service.ExtremeRisk},

	{service.AlmostCertain, service.Insignificant, service.ModerateRisk},
	{service.AlmostCertain, service.Minor, service.HighRisk},
	{service.AlmostCertain, service.Moderate, service.ExtremeRisk},
	{service.AlmostCertain, service.Major, service.ExtremeRisk},
	{service.AlmostCertain, service.Catastrophic, service.ExtremeRisk},
}

func TestRateCoversEveryCell(t *testing.T) {
	for _, tc := range matrixCases {
		got := service.Rate(string(tc.likelihood), string(tc.consequence))
		assert.Equalf(t, tc.want, got, "rate(%s, %s)", tc.likelihood, tc.consequence)
		assert.NotEqual(t, service.UnknownRisk, got)
	}
	assert.Len(t, matrixCases, 25)
}

func TestRateIsDeterministic(t *testing.T) {
	first := service.Rate("likely", "moderate")
	second := service.Rate("likely", "moderate")
	assert.Equal(t, first, second)
	assert.Equal(t, service.HighRisk, first)
}

func TestRateNormalizesInput(t *testing.T) {
	assert.Equal(t,
		service.Rate("highly_unlikely", "minor"),
		service.Rate(" Highly Unlikely ", "MINOR"),
	)
	assert.Equal(t, service.ExtremeRisk, service.Rate("Almost  Certain", " Catastrophic"))
}

func TestRateBlankUntilBothChosen(t *testing.T) {
	assert.Equal(t, service.RatingLabel(""), service.Rate("", "major"))
	assert.Equal(t, service.RatingLabel(""), service.Rate("likely", ""))
	assert.Equal(t, service.RatingLabel(""), service.Rate("  ", ""))
}

func TestRateUnknownPair(t *testing.T) {
	assert.Equal(t, service.UnknownRisk, service.Rate("likely", "apocalyptic"))
	assert.Equal(t, service.UnknownRisk, service.Rate("impossible", "minor"))
}

func TestBandValidation(t *testing.T) {
	for _, l := range service.Likelihoods() {
		assert.True(t, service.ValidLikelihood(string(l)))
	}
	for _, c := range service.Consequences() {
		assert.True(t, service.ValidConsequence(string(c)))
	}
	assert.False(t, service.ValidLikelihood("sometimes"))
	assert.False(t, service.ValidConsequence("huge"))
	assert.True(t, service.ValidLikelihood("Quite Possible"))
}
