package dto

// Claim attribution labels. Every claim in a qualitative assessment must
// carry exactly one.
const (
	AttributionKnown             = "KNOWN"
	AttributionInferred          = "INFERRED"
	AttributionNeedsVerification = "NEEDS_VERIFICATION"
)

// AssessmentClaim is one attributed statement from the narrative model.
type AssessmentClaim struct {
	Statement   string `json:"statement"`
	Attribution string `json:"attribution"`
}

// QualitativeAssessment is the typed JSON record the narrative model must
// return. Sentiment is BULLISH/NEUTRAL/BEARISH, confidence HIGH/MEDIUM/LOW.
type QualitativeAssessment struct {
	Ticker              string            `json:"ticker"`
	Sentiment           string            `json:"sentiment"`
	Confidence          string            `json:"confidence"`
	MissingDataDetected bool              `json:"missing_data_detected"`
	Claims              []AssessmentClaim `json:"claims"`
	Reasoning           string            `json:"reasoning"`
}

// HasKnownClaim reports whether at least one claim is attributed KNOWN.
// HIGH confidence without one is clamped by the adapter.
func (a QualitativeAssessment) HasKnownClaim() bool {
	for _, c := range a.Claims {
		if c.Attribution == AttributionKnown {
			return true
		}
	}
	return false
}
