// Package timefmt renders session start times as localized relative
// phrases.
package timefmt

import (
	"time"

	"golang.org/x/text/message"
)

// RelativeStart describes how far away a session start is, in the
// coarsest sensible unit. Starts in the past or right now collapse to
// the "starting now" phrase; future starts round half-up at each unit
// step, so 90 minutes reads as 2 hours and 23h59m rolls over to 1 day.
func RelativeStart(printer *message.Printer, now, start time.Time) string {
	diff := start.Sub(now)
	if diff <= 0 {
		return printer.Sprintf("session.starting_now")
	}
	minutes := roundDiv(diff.Milliseconds(), time.Minute.Milliseconds())
	if minutes < 60 {
		return unitPhrase(printer, "session.rel.minute", "session.rel.minutes", minutes)
	}
	hours := roundDiv(minutes, 60)
	if hours < 24 {
		return unitPhrase(printer, "session.rel.hour", "session.rel.hours", hours)
	}
	days := roundDiv(hours, 24)
	return unitPhrase(printer, "session.rel.day", "session.rel.days", days)
}

func unitPhrase(printer *message.Printer, singular, plural string, value int64) string {
	if value < 1 {
		value = 1
	}
	if value == 1 {
		return printer.Sprintf(singular)
	}
	return printer.Sprintf(plural, value)
}

func roundDiv(value, unit int64) int64 {
	return (value + unit/2) / unit
}
