package catalog

import (
	"sort"

	"livelyicons/internal/domain"
	"livelyicons/internal/search"
)

// keywordPenalty keeps a keyword hit below an equally good name hit
const keywordPenalty = 5

// LookupResult is an icon ranked by Lookup
type LookupResult struct {
	Icon    domain.Icon
	Score   float64
	Keyword string // keyword that produced the score, "" for a name match
}

// Lookup ranks icons by their name and, with a penalty, by their keywords.
// Each icon appears at most once, with its best score. Ties keep input order.
func Lookup(query string, icons []domain.Icon) []LookupResult {
	var results []LookupResult
	for _, icon := range icons {
		best, ok := search.Score(query, icon.Name)
		keyword := ""
		for _, kw := range icon.Keywords {
			score, matched := search.Score(query, kw)
			if !matched {
				continue
			}
			score -= keywordPenalty
			if !ok || score > best {
				best, ok, keyword = score, true, kw
			}
		}
		if ok {
			results = append(results, LookupResult{Icon: icon, Score: best, Keyword: keyword})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Filter returns the icons matching category and motion; empty values match all
func Filter(icons []domain.Icon, category string, m string) []domain.Icon {
	var out []domain.Icon
	for _, icon := range icons {
		if category != "" && icon.Category != category {
			continue
		}
		if m != "" && string(icon.Motion) != m {
			continue
		}
		out = append(out, icon)
	}
	return out
}
