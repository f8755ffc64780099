package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/healing-together/recoveryhub/internal/storage"
)

// DashboardView is the home page state.
type DashboardView struct {
	GreetingKey string
	UserName    string
	Today       string
	RecoveryDay int
	Week        []storage.WeeklyProgress
}

// DashboardPage renders the greeting header and the weekly progress
// chart.
func DashboardPage(page PageContext, view DashboardView) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := el(w, `<header class="page-header"><h1>%s, %s</h1><p>%s</p><p class="recovery-day">%s</p></header>`,
			esc(T(page.Loc, view.GreetingKey)),
			esc(view.UserName),
			esc(T(page.Loc, "dashboard.today", view.Today)),
			esc(T(page.Loc, "dashboard.recovery_day", view.RecoveryDay))); err != nil {
			return err
		}
		if err := el(w, `<section class="weekly-chart"><h2>%s</h2><p>%s</p><ul class="chart-bars">`,
			esc(T(page.Loc, "dashboard.weekly.title")),
			esc(T(page.Loc, "dashboard.weekly.subtitle"))); err != nil {
			return err
		}
		for _, day := range view.Week {
			percent := 0
			if day.GoalMinutes > 0 {
				percent = day.CompletedMinutes * 100 / day.GoalMinutes
				if percent > 100 {
					percent = 100
				}
			}
			if err := el(w, `<li class="chart-bar"><div class="bar" style="height: %d%%"></div><span class="bar-minutes">%s</span><span class="bar-goal">%s</span><span class="bar-day">%s</span></li>`,
				percent,
				esc(T(page.Loc, "dashboard.weekly.minutes", day.CompletedMinutes)),
				esc(T(page.Loc, "dashboard.weekly.goal", day.GoalMinutes)),
				esc(day.Weekday.String()[:3])); err != nil {
				return err
			}
		}
		return el(w, `</ul></section>`)
	})
	return AppLayout(page, T(page.Loc, "dashboard.title"), body)
}
