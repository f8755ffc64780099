package timefmt

import (
	"testing"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/healing-together/recoveryhub/internal/platform/i18n/catalog"
)

func newPrinter(t *testing.T, locale string) *message.Printer {
	t.Helper()
	tag := language.MustParse(locale)
	if err := catalog.Default().Register(); err != nil {
		t.Fatalf("register catalog: %v", err)
	}
	return message.NewPrinter(tag)
}

func TestRelativeStart(t *testing.T) {
	t.Parallel()

	printer := newPrinter(t, "en")
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		want  string
	}{
		{name: "past", start: now.Add(-10 * time.Minute), want: "starting now"},
		{name: "exactly now", start: now, want: "starting now"},
		{name: "sub-minute clamps to one minute", start: now.Add(20 * time.Second), want: "in 1 minute"},
		{name: "half a minute rounds up", start: now.Add(30 * time.Second), want: "in 1 minute"},
		{name: "minutes", start: now.Add(45 * time.Minute), want: "in 45 minutes"},
		{name: "just over an hour", start: now.Add(65 * time.Minute), want: "in 1 hour"},
		{name: "ninety minutes rounds to two hours", start: now.Add(90 * time.Minute), want: "in 2 hours"},
		{name: "hours", start: now.Add(3*time.Hour + 20*time.Minute), want: "in 3 hours"},
		{name: "just under a day rounds up", start: now.Add(23*time.Hour + 59*time.Minute), want: "in 1 day"},
		{name: "days", start: now.Add(72 * time.Hour), want: "in 3 days"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RelativeStart(printer, now, tc.start); got != tc.want {
				t.Fatalf("RelativeStart = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRelativeStartLocalized(t *testing.T) {
	t.Parallel()

	printer := newPrinter(t, "zh")
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	if got := RelativeStart(printer, now, now); got != "即将开始" {
		t.Fatalf("zh starting now = %q", got)
	}
}
