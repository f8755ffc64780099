package storage

import (
	"sort"
	"strings"
)

// CategoryAll is the sentinel category matching every article.
const CategoryAll = "all"

// SortGroups orders groups pinned-first, then by ascending start time.
// The input slice is not modified.
func SortGroups(groups []GroupExercise) []GroupExercise {
	sorted := make([]GroupExercise, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pinned != sorted[j].Pinned {
			return sorted[i].Pinned
		}
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}

// HasPinned reports whether any group in the slice is pinned.
func HasPinned(groups []GroupExercise) bool {
	for _, group := range groups {
		if group.Pinned {
			return true
		}
	}
	return false
}

// FilterArticles keeps articles whose title or summary contains the search
// term (case-insensitive) and whose category matches the selection.
// An empty search matches everything; CategoryAll matches every category.
func FilterArticles(articles []Article, search string, category string) []Article {
	normalized := strings.ToLower(strings.TrimSpace(search))
	out := make([]Article, 0, len(articles))
	for _, article := range articles {
		if normalized != "" {
			title := strings.ToLower(article.Title)
			summary := strings.ToLower(article.Summary)
			if !strings.Contains(title, normalized) && !strings.Contains(summary, normalized) {
				continue
			}
		}
		if category != "" && category != CategoryAll && article.Category != category {
			continue
		}
		out = append(out, article)
	}
	return out
}

// CategoryCount pairs a category identifier with its article count.
type CategoryCount struct {
	Category string
	Count    int
}

// articleCategories is the fixed chip order of the knowledge browser.
var articleCategories = []string{"Knee", "Shoulder", "Spine", "Ankle", "Hip", "Wrist"}

// CategoryCounts returns the "all" chip followed by every known category
// with its article count, in display order.
func CategoryCounts(articles []Article) []CategoryCount {
	counts := []CategoryCount{{Category: CategoryAll, Count: len(articles)}}
	for _, category := range articleCategories {
		count := 0
		for _, article := range articles {
			if article.Category == category {
				count++
			}
		}
		counts = append(counts, CategoryCount{Category: category, Count: count})
	}
	return counts
}

// ArticleStats summarizes the knowledge collection for the stats strip.
type ArticleStats struct {
	TotalArticles  int
	ExpertAuthors  int
	AvgReadMinutes int
}

// Stats computes collection-level article statistics. The average reading
// time is rounded to the nearest minute.
func Stats(articles []Article) ArticleStats {
	if len(articles) == 0 {
		return ArticleStats{}
	}
	authors := map[string]struct{}{}
	totalMinutes := 0
	for _, article := range articles {
		authors[article.Author] = struct{}{}
		totalMinutes += article.ReadMinutes
	}
	avg := (totalMinutes + len(articles)/2) / len(articles)
	return ArticleStats{
		TotalArticles:  len(articles),
		ExpertAuthors:  len(authors),
		AvgReadMinutes: avg,
	}
}
