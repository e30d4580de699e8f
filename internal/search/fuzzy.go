// Package search ranks icon names against a free-text query.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Score weights
const (
	scoreExact    = 100
	scorePrefix   = 90
	scoreContains = 70

	pointsPerChar     = 10
	bonusAdjacent     = 5
	bonusWordBoundary = 3
)

// Match is a candidate with its score
type Match struct {
	Item  string
	Score float64
}

// Score rates candidate against query, case-insensitively.
// The second return is false when candidate does not match at all.
func Score(query, candidate string) (float64, bool) {
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)
	qLen := utf8.RuneCountInString(q)
	cLen := utf8.RuneCountInString(c)

	if c == q {
		return scoreExact, true
	}
	if strings.HasPrefix(c, q) {
		return float64(scorePrefix - (cLen - qLen)), true
	}
	if idx := strings.Index(c, q); idx >= 0 {
		return float64(scoreContains - utf8.RuneCountInString(c[:idx])), true
	}
	return subsequenceScore([]rune(q), []rune(c))
}

// subsequenceScore greedily consumes query runes left to right over candidate
func subsequenceScore(q, c []rune) (float64, bool) {
	if len(q) == 0 || len(q) > len(c) {
		return 0, false
	}

	raw := 0
	qi := 0
	last := -1
	for ci := 0; ci < len(c) && qi < len(q); ci++ {
		if c[ci] != q[qi] {
			continue
		}
		raw += pointsPerChar
		if last >= 0 && ci == last+1 {
			raw += bonusAdjacent
		}
		if ci == 0 || c[ci-1] == '-' {
			raw += bonusWordBoundary
		}
		last = ci
		qi++
	}
	if qi < len(q) {
		return 0, false
	}

	return float64(raw) - float64(len(c))/10, true
}

// Rank scores every candidate and returns the matches best first.
// Equal scores keep their input order.
func Rank(query string, candidates []string) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		if score, ok := Score(query, candidate); ok {
			matches = append(matches, Match{Item: candidate, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// Search returns the matching candidates best first
func Search(query string, candidates []string) []string {
	matches := Rank(query, candidates)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Item
	}
	return out
}

// HighlightPositions returns the rune positions in candidate that the query
// matched, for emphasis in the picker. Nil when there is no match.
func HighlightPositions(query, candidate string) []int {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)

	if idx := strings.Index(c, q); idx >= 0 {
		start := utf8.RuneCountInString(c[:idx])
		n := utf8.RuneCountInString(q)
		positions := make([]int, n)
		for i := range positions {
			positions[i] = start + i
		}
		return positions
	}

	qr := []rune(q)
	var positions []int
	qi := 0
	for ci, r := range []rune(c) {
		if qi < len(qr) && r == qr[qi] {
			positions = append(positions, ci)
			qi++
		}
	}
	if qi < len(qr) {
		return nil
	}
	return positions
}
