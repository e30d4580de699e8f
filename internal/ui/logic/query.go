package logic

import (
	"strings"

	"livelyicons/internal/domain"
	"livelyicons/internal/motion"
)

// Filter prefixes understood in the picker query
const (
	motionPrefix   = "motion:"
	categoryPrefix = "category:"
	triggerPrefix  = "trigger:"
)

// Query is a parsed picker query: free text plus optional filters
type Query struct {
	Text     string             // kebab-joined free text
	Motion   motion.MotionType  // "" matches every motion
	Category string             // category prefix, "" matches every category
	Trigger  motion.TriggerType // preview trigger requested in the query
	Unknown  []string           // filter tokens whose value did not parse
}

// ParseQuery splits raw input into free text and filters.
// "arrow up motion:translate" searches "arrow-up" among translate icons.
func ParseQuery(input string) Query {
	var q Query
	var words []string

	for _, tok := range strings.Fields(input) {
		lower := strings.ToLower(tok)
		switch {
		case strings.HasPrefix(lower, motionPrefix):
			value := strings.TrimPrefix(lower, motionPrefix)
			if value == "" {
				continue
			}
			if m, ok := motion.ParseMotionType(value); ok {
				q.Motion = m
			} else {
				q.Unknown = append(q.Unknown, tok)
			}
		case strings.HasPrefix(lower, categoryPrefix):
			q.Category = strings.TrimPrefix(lower, categoryPrefix)
		case strings.HasPrefix(lower, triggerPrefix):
			value := strings.TrimPrefix(lower, triggerPrefix)
			if value == "" {
				continue
			}
			if t, ok := motion.ParseTriggerType(value); ok {
				q.Trigger = t
			} else {
				q.Unknown = append(q.Unknown, tok)
			}
		default:
			words = append(words, tok)
		}
	}

	q.Text = strings.Join(words, "-")
	return q
}

// HasFilters reports whether the query narrows the icon set
func (q Query) HasFilters() bool {
	return q.Motion != "" || q.Category != ""
}

// Matches checks an icon against the motion and category filters
func (q Query) Matches(icon domain.Icon) bool {
	if q.Motion != "" && icon.Motion != q.Motion {
		return false
	}
	if q.Category != "" && !strings.HasPrefix(strings.ToLower(icon.Category), q.Category) {
		return false
	}
	return true
}
