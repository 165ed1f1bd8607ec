package repository

import (
	"fmt"
	"strings"

	"golang-equity-advisor/internal/advisor/dto"
)

// BuildQualitativeAssessmentPrompt assembles the fact bundle handed to the
// narrative model. The model sees only fetched facts; it is told not to
// invent figures and to attribute every claim.
func BuildQualitativeAssessmentPrompt(ticker, sector string, fundamentals *dto.StockFundamentals, newsItems []dto.NewsItem) string {
	var factBuilder strings.Builder

	factBuilder.WriteString(fmt.Sprintf("Ticker: %s\nSector: %s\n", ticker, sector))

	if fundamentals != nil {
		factBuilder.WriteString(fmt.Sprintf("Fundamentals (source: %s):\n", fundamentals.Source))
		factBuilder.WriteString(formatMetricLine("P/E", fundamentals.PE))
		factBuilder.WriteString(formatMetricLine("ROE", fundamentals.ROE))
		factBuilder.WriteString(formatMetricLine("Debt/Equity", fundamentals.DebtToEquity))
		factBuilder.WriteString(formatMetricLine("EPS", fundamentals.EPS))
		factBuilder.WriteString(formatMarketCapLine(fundamentals.MarketCap))
	} else {
		factBuilder.WriteString("Fundamentals: unavailable\n")
	}

	if len(newsItems) == 0 {
		factBuilder.WriteString("\nRecent news: none found\n")
	} else {
		factBuilder.WriteString("\nRecent news:\n")
		for i, item := range newsItems {
			factBuilder.WriteString(fmt.Sprintf(
				"%d. Title: %q\n   Source: %s\n   Published At: %s\n",
				i+1, item.Title, item.Source, item.PublishedAt.Format("2006-01-02 15:04:05"),
			))
			if item.Content != "" {
				factBuilder.WriteString(fmt.Sprintf("   Content: %s\n", item.Content))
			}
		}
	}

	promptTemplate := `You are an equity research analyst. Assess the qualitative outlook for %s using ONLY the facts below. Do not invent figures. Every claim must be attributed: KNOWN (directly supported by a fact below), INFERRED (a reasonable deduction), or NEEDS_VERIFICATION (plausible but unsupported).

%s
Respond with JSON only, no prose outside the JSON:

{
  "sentiment": "BULLISH | NEUTRAL | BEARISH",
  "confidence": "HIGH | MEDIUM | LOW",
  "missing_data_detected": true | false,
  "claims": [
    {"statement": "...", "attribution": "KNOWN | INFERRED | NEEDS_VERIFICATION"}
  ],
  "reasoning": "one short paragraph"
}

Set missing_data_detected to true if any fundamental above is unavailable or no news was found. Confidence may be HIGH only when the assessment rests on KNOWN claims.`

	return fmt.Sprintf(promptTemplate, ticker, factBuilder.String())
}

func formatMetricLine(name string, value *float64) string {
	if value == nil {
		return fmt.Sprintf("  %s: N/A\n", name)
	}
	return fmt.Sprintf("  %s: %.2f\n", name, *value)
}

func formatMarketCapLine(value *float64) string {
	if value == nil {
		return "  Market Cap: N/A\n"
	}
	return fmt.Sprintf("  Market Cap: %.0f\n", *value)
}
