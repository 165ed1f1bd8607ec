package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-equity-advisor/internal/entity"
)

// FormatDecisionMessage renders one StockDecision as a Markdown message.
func FormatDecisionMessage(d *entity.StockDecision) string {
	var b strings.Builder

	var icon string
	switch d.Decision {
	case "BUY":
		icon = "🟢"
	case "AVOID", "SELL":
		icon = "🔴"
	default:
		icon = "🟡"
	}

	b.WriteString(fmt.Sprintf("%s *%s - %s*\n", icon, d.Ticker, d.Decision))
	b.WriteString(fmt.Sprintf("📊 *Score:* %d/100\n", d.NormalizedScore))
	if d.RSI != nil {
		b.WriteString(fmt.Sprintf("📈 *RSI:* %.2f\n", *d.RSI))
	}
	b.WriteString(fmt.Sprintf("🎯 *Confidence:* %s | *Risk:* %s\n", d.Confidence, d.RiskLevel))
	b.WriteString(fmt.Sprintf("🧮 *Matrix:* %s\n", d.MatrixRow))

	if len(d.MissingData) > 0 {
		b.WriteString(fmt.Sprintf("⚠️ *Missing data:* %s\n", strings.Join(d.MissingData, ", ")))
	}

	if len(d.Reasons) > 0 {
		b.WriteString("\n*Reasons:*\n")
		for i, reason := range d.Reasons {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, reason))
		}
	}

	b.WriteString(fmt.Sprintf("\n🕐 %s", d.AnalyzedAt.Format("2006-01-02 15:04:05")))
	return b.String()
}

// FormatErrorAlertMessage renders an operational alert.
func FormatErrorAlertMessage(t time.Time, message string) string {
	return fmt.Sprintf("🚨 *Equity Advisor Alert*\n🕐 %s\n\n%s", t.Format("2006-01-02 15:04:05"), message)
}
