// Package common holds text and styling helpers shared by the UI components.
package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Truncate shortens s to at most width terminal cells, marking the cut with
// an ellipsis. Newlines are flattened to spaces first.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, width, ellipsis)
}

// PadRight fills s with spaces up to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// RelativeTime renders t as a compact age for the chat list: "now", "5m",
// "3h", "2d", or the calendar date once a week has passed. The zero time
// renders as "".
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(diff/(24*time.Hour)))
	default:
		return t.Local().Format("Jan 2, 2006")
	}
}

// ClockTime renders the hour and minute of t.
func ClockTime(t time.Time) string {
	return t.Local().Format("15:04")
}
