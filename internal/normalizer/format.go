package normalizer

import (
	"fmt"
	"strings"

	"flight-report/internal/serpapi"
)

// FormatMinutes converts integer minutes to "14h 30m", omitting the minute
// part when it is zero (120 -> "2h", 0 -> "0h").
func FormatMinutes(mins int) string {
	h := mins / 60
	m := mins % 60
	if m != 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

// FormatLayovers renders layover airports with durations, e.g.
// "ICN (1h 35m) · PVG (2h 10m)". A direct flight renders as "—".
func FormatLayovers(layovers []serpapi.Layover) string {
	if len(layovers) == 0 {
		return "—"
	}
	parts := make([]string, 0, len(layovers))
	for _, l := range layovers {
		id := l.ID
		if id == "" {
			id = "?"
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", id, FormatMinutes(l.Duration)))
	}
	return strings.Join(parts, " · ")
}

// FormatStops pluralizes a stop count: "Direct", "1 stop", "2 stops".
func FormatStops(stops int) string {
	switch {
	case stops == 0:
		return "Direct"
	case stops == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}
