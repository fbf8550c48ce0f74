package notifier

import (
	"fmt"
	"strings"

	"TrendSentinel/internal/model"
)

// FormatSignalReport formats a prediction signal into a Telegram message.
func FormatSignalReport(sig *model.Signal) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<b>TrendSentinel</b> | %s | %s\n\n", sig.Ticker, sig.Time.Format("2006-01-02")))

	if sig.Direction == model.DirectionUp {
		b.WriteString(fmt.Sprintf("📈 Next session outlook for %s: <b>up</b>\n", sig.Ticker))
	} else {
		b.WriteString(fmt.Sprintf("📉 Next session outlook for %s: <b>down/flat</b>\n", sig.Ticker))
	}
	b.WriteString(fmt.Sprintf("Model confidence: %.2f%%\n", sig.Confidence))

	if sig.Dispatch {
		b.WriteString("\n🔔 Buy signal dispatched")
	}
	return b.String()
}

// FormatGateStatus formats a session-gate check for display.
func FormatGateStatus(open bool, reason string) string {
	if open {
		return "🟢 Market session is open"
	}
	return fmt.Sprintf("🔴 Market session is closed (%s)", reason)
}
