package repository

import (
	"testing"

	"golang-equity-advisor/internal/advisor/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiResponse(text string) *dto.GeminiAPIResponse {
	return &dto.GeminiAPIResponse{
		Candidates: []dto.Candidate{
			{Content: dto.Content{Parts: []dto.Part{{Text: text}}}},
		},
	}
}

func TestParseQualitativeAssessment_FencedJSON(t *testing.T) {
	raw := "```json\n{\"sentiment\":\"BULLISH\",\"confidence\":\"HIGH\",\"missing_data_detected\":false,\"claims\":[{\"statement\":\"ROE is 22%\",\"attribution\":\"KNOWN\"}],\"reasoning\":\"strong fundamentals\"}\n```"

	result, err := ParseQualitativeAssessment(geminiResponse(raw), "INFY.NS")

	require.NoError(t, err)
	assert.Equal(t, "INFY.NS", result.Ticker)
	assert.Equal(t, "BULLISH", result.Sentiment)
	assert.Equal(t, "HIGH", result.Confidence)
	assert.False(t, result.MissingDataDetected)
	require.Len(t, result.Claims, 1)
	assert.Equal(t, dto.AttributionKnown, result.Claims[0].Attribution)
}

func TestParseQualitativeAssessment_ClampsHighWithoutKnownClaim(t *testing.T) {
	raw := `{"sentiment":"BULLISH","confidence":"HIGH","missing_data_detected":false,"claims":[{"statement":"momentum looks good","attribution":"INFERRED"}],"reasoning":"vibes"}`

	result, err := ParseQualitativeAssessment(geminiResponse(raw), "INFY.NS")

	require.NoError(t, err)
	assert.Equal(t, "MEDIUM", result.Confidence)
}

func TestParseQualitativeAssessment_KeepsMediumWithoutKnownClaim(t *testing.T) {
	raw := `{"sentiment":"NEUTRAL","confidence":"MEDIUM","missing_data_detected":true,"claims":[],"reasoning":"little to go on"}`

	result, err := ParseQualitativeAssessment(geminiResponse(raw), "INFY.NS")

	require.NoError(t, err)
	assert.Equal(t, "MEDIUM", result.Confidence)
	assert.True(t, result.MissingDataDetected)
}

func TestParseQualitativeAssessment_RejectsInvalidSentiment(t *testing.T) {
	raw := `{"sentiment":"VERY_BULLISH","confidence":"HIGH","claims":[],"reasoning":""}`

	_, err := ParseQualitativeAssessment(geminiResponse(raw), "INFY.NS")

	assert.Error(t, err)
}

func TestParseQualitativeAssessment_RejectsInvalidAttribution(t *testing.T) {
	raw := `{"sentiment":"NEUTRAL","confidence":"LOW","claims":[{"statement":"x","attribution":"GUESSED"}],"reasoning":""}`

	_, err := ParseQualitativeAssessment(geminiResponse(raw), "INFY.NS")

	assert.Error(t, err)
}

func TestParseQualitativeAssessment_RejectsMalformedJSON(t *testing.T) {
	_, err := ParseQualitativeAssessment(geminiResponse("the stock looks great!"), "INFY.NS")
	assert.Error(t, err)
}

func TestParseQualitativeAssessment_RejectsEmptyResponse(t *testing.T) {
	_, err := ParseQualitativeAssessment(&dto.GeminiAPIResponse{}, "INFY.NS")
	assert.Error(t, err)
}
