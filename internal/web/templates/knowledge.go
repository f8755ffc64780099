package templates

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/healing-together/recoveryhub/internal/storage"
)

// KnowledgeView is the article browser state.
type KnowledgeView struct {
	Search   string
	Category string
	Counts   []storage.CategoryCount
	Articles []storage.Article
	Stats    storage.ArticleStats
}

// KnowledgePage renders search, category chips, the stats strip and
// the filtered article list.
func KnowledgePage(page PageContext, view KnowledgeView) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := el(w, `<header class="page-header"><h1>%s</h1><p>%s</p></header>`,
			esc(T(page.Loc, "knowledge.title")),
			esc(T(page.Loc, "knowledge.subtitle"))); err != nil {
			return err
		}
		if err := el(w, `<form method="get" action="%s" class="knowledge-filter"><input type="search" name="search" value="%s" placeholder="%s"><input type="hidden" name="category" value="%s"></form>`,
			esc(page.Href("/dashboard/knowledge")),
			esc(view.Search),
			esc(T(page.Loc, "knowledge.search_placeholder")),
			esc(view.Category)); err != nil {
			return err
		}
		if err := el(w, `<ul class="category-chips">`); err != nil {
			return err
		}
		for _, count := range view.Counts {
			active := ""
			if count.Category == view.Category {
				active = " is-active"
			}
			query := url.Values{"category": {count.Category}}
			if view.Search != "" {
				query.Set("search", view.Search)
			}
			href := page.Href("/dashboard/knowledge") + "?" + query.Encode()
			label := T(page.Loc, "knowledge.category."+strings.ToLower(count.Category))
			if err := el(w, `<li><a class="chip%s" href="%s">%s</a></li>`,
				active, esc(href), esc(T(page.Loc, "knowledge.category_with_count", label, count.Count))); err != nil {
				return err
			}
		}
		if err := el(w, `</ul>`); err != nil {
			return err
		}
		if err := el(w, `<section class="knowledge-stats"><div><span>%d</span> %s</div><div><span>%d</span> %s</div><div><span>%s</span> %s</div></section>`,
			view.Stats.TotalArticles, esc(T(page.Loc, "knowledge.stats.total_articles")),
			view.Stats.ExpertAuthors, esc(T(page.Loc, "knowledge.stats.expert_authors")),
			esc(T(page.Loc, "knowledge.minutes", view.Stats.AvgReadMinutes)),
			esc(T(page.Loc, "knowledge.stats.avg_reading_time"))); err != nil {
			return err
		}
		if len(view.Articles) == 0 {
			return el(w, `<div class="empty-state"><h2>%s</h2><p>%s</p></div>`,
				esc(T(page.Loc, "knowledge.empty.title")),
				esc(T(page.Loc, "knowledge.empty.description")))
		}
		if err := el(w, `<h2 class="list-heading">%s</h2><ul class="article-list">`,
			esc(T(page.Loc, "knowledge.list_heading", len(view.Articles)))); err != nil {
			return err
		}
		for _, article := range view.Articles {
			if err := el(w, `<li class="article-card"><h3>%s</h3><p>%s</p><footer><span>%s</span><span>%s</span></footer></li>`,
				esc(article.Title),
				esc(article.Summary),
				esc(article.Author),
				esc(T(page.Loc, "knowledge.reading_time", article.ReadMinutes))); err != nil {
				return err
			}
		}
		return el(w, `</ul>`)
	})
	return AppLayout(page, T(page.Loc, "knowledge.title"), body)
}
