package report

import (
	"fmt"
	"html/template"
)

// Subject builds the report email subject line, e.g.
// "[Flight Report] YYZ <-> Asia | dep 2026-10-23–2026-10-24 | 12 options (2026-08-31)".
func Subject(p Params, depDates []string, total int) string {
	depRange := ""
	if len(depDates) > 0 {
		depRange = depDates[0] + "–" + depDates[len(depDates)-1]
	}
	return fmt.Sprintf("[Flight Report] %s <-> %s | dep %s | %d options (%s)",
		p.Origin, p.RegionLabel, depRange, total, p.ReportDate)
}

// ErrorSubject is the subject of the best-effort fetch-failure notification.
func ErrorSubject(reportDate string) string {
	return fmt.Sprintf("[Flight Report] ERROR – data fetch failed (%s)", reportDate)
}

// RenderError builds the minimal HTML body for the failure notification.
func RenderError(err error) string {
	return "<p><strong>Error fetching flight data:</strong> " +
		template.HTMLEscapeString(err.Error()) + "</p>"
}
