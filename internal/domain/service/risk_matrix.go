// Package service contains domain services: the risk rating matrix and the
// login token service.
package service

import "strings"

// Likelihood is one of the five closed likelihood bands.
type Likelihood string

const (
	HighlyUnlikely Likelihood = "highly_unlikely"
	Unlikely       Likelihood = "unlikely"
	QuitePossible  Likelihood = "quite_possible"
	Likely         Likelihood = "likely"
	AlmostCertain  Likelihood = "almost_certain"
)

// Consequence is one of the five closed consequence bands.
type Consequence string

const (
	Insignificant Consequence = "insignificant"
	Minor         Consequence = "minor"
	Moderate      Consequence = "moderate"
	Major         Consequence = "major"
	Catastrophic  Consequence = "catastrophic"
)

// RatingLabel is the qualitative rating derived from the matrix.
type RatingLabel string

const (
	LowRisk      RatingLabel = "low_risk"
	ModerateRisk RatingLabel = "moderate_risk"
	HighRisk     RatingLabel = "high_risk"
	ExtremeRisk  RatingLabel = "extreme_risk"
	UnknownRisk  RatingLabel = "unknown"
)

// ratingMatrix is the single source of truth for the likelihood x consequence
// lookup. Both the API write paths and any client preview must agree with it.
var ratingMatrix = map[Likelihood]map[Consequence]RatingLabel{
	HighlyUnlikely: {
		Insignificant: LowRisk,
		Minor:         LowRisk,
		Moderate:      LowRisk,
		Major:         ModerateRisk,
		Catastrophic:  HighRisk,
	},
	Unlikely: {
		Insignificant: LowRisk,
		Minor:         ModerateRisk,
		Moderate:      ModerateRisk,
		Major:         HighRisk,
		Catastrophic:  HighRisk,
	},
	QuitePossible: {
		Insignificant: LowRisk,
		Minor:         ModerateRisk,
		Moderate:      HighRisk,
		Major:         HighRisk,
		Catastrophic:  ExtremeRisk,
	},
	Likely: {
		Insignificant: ModerateRisk,
		Minor:         HighRisk,
		Moderate:      HighRisk,
		Major:         ExtremeRisk,
		Catastrophic:  ExtremeRisk,
	},
	AlmostCertain: {
		Insignificant: ModerateRisk,
		Minor:         HighRisk,
		Moderate:      ExtremeRisk,
		Major:         ExtremeRisk,
		Catastrophic:  ExtremeRisk,
	},
}

// NormalizeBand canonicalizes a likelihood or consequence value: trimmed,
// lowercased, internal whitespace collapsed to underscores. " Highly
// Unlikely " and "highly_unlikely" are the same band.
func NormalizeBand(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(s, "_", " "))), "_")
}

// Rate maps a (likelihood, consequence) pair to its qualitative rating.
// Pure and total over the closed enumerations: every valid pair yields one of
// the four rating bands. If either input is empty the rating is empty, so a
// half-filled form renders blank rather than "unknown". Any other unmatched
// pair yields UnknownRisk.
func Rate(likelihood, consequence string) RatingLabel {
	l := Likelihood(NormalizeBand(likelihood))
	c := Consequence(NormalizeBand(consequence))

	if l == "" || c == "" {
		return ""
	}
	if row, ok := ratingMatrix[l]; ok {
		if rating, ok := row[c]; ok {
			return rating
		}
	}
	return UnknownRisk
}

// ValidLikelihood reports whether the input names a known likelihood band.
func ValidLikelihood(s string) bool {
	_, ok := ratingMatrix[Likelihood(NormalizeBand(s))]
	return ok
}

// ValidConsequence reports whether the input names a known consequence band.
func ValidConsequence(s string) bool {
	switch Consequence(NormalizeBand(s)) {
	case Insignificant, Minor, Moderate, Major, Catastrophic:
		return true
	}
	return false
}

// Likelihoods returns the likelihood bands in ascending order.
func Likelihoods() []Likelihood {
	return []Likelihood{HighlyUnlikely, Unlikely, QuitePossible, Likely, AlmostCertain}
}

// Consequences returns the consequence bands in ascending order.
func Consequences() []Consequence {
	return []Consequence{Insignificant, Minor, Moderate, Major, Catastrophic}
}
