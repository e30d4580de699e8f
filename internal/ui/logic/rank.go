package logic

import (
	"sort"

	"livelyicons/internal/catalog"
	"livelyicons/internal/domain"
	"livelyicons/internal/search"
)

// Row is one picker result
type Row struct {
	Icon    domain.Icon
	Score   float64
	Keyword string // keyword that matched, "" for a name match
}

// Rank filters icons by the query's filters, ranks them by its free text and
// applies the sort mode. Without free text every filtered icon is listed in
// input order. keywords enables keyword-aware lookup.
func Rank(q Query, icons []domain.Icon, keywords bool, mode SortMode) []Row {
	var filtered []domain.Icon
	for _, icon := range icons {
		if q.Matches(icon) {
			filtered = append(filtered, icon)
		}
	}

	var rows []Row
	switch {
	case q.Text == "":
		rows = make([]Row, len(filtered))
		for i, icon := range filtered {
			rows[i] = Row{Icon: icon}
		}
	case keywords:
		for _, r := range catalog.Lookup(q.Text, filtered) {
			rows = append(rows, Row{Icon: r.Icon, Score: r.Score, Keyword: r.Keyword})
		}
	default:
		for _, icon := range filtered {
			if score, ok := search.Score(q.Text, icon.Name); ok {
				rows = append(rows, Row{Icon: icon, Score: score})
			}
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Score > rows[j].Score
		})
	}

	SortRows(rows, mode)
	return rows
}

// Limit truncates rows to n; n <= 0 keeps everything
func Limit(rows []Row, n int) []Row {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
