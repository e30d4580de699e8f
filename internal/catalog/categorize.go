package catalog

import (
	"sort"
	"strings"

	"livelyicons/internal/domain"
	"livelyicons/internal/motion"
)

// CategoryOther collects icons no rule claims
const CategoryOther = "other"

type categoryRule struct {
	category string
	motion   motion.MotionType
	tokens   []string
}

// rules are checked in order against the dash-separated tokens of a name;
// the first rule with a matching token wins
var rules = []categoryRule{
	{"arrows", motion.Translate, []string{"arrow", "arrows", "chevron", "chevrons", "corner", "move", "undo", "redo", "refresh"}},
	{"time", motion.Spin, []string{"clock", "alarm", "timer", "hourglass", "calendar", "loader", "rotate", "history", "watch"}},
	{"weather", motion.Rotate, []string{"sun", "moon", "cloud", "rain", "snow", "snowflake", "wind", "umbrella", "thermometer", "storm"}},
	{"communication", motion.Shake, []string{"bell", "mail", "message", "phone", "send", "inbox", "at", "chat"}},
	{"social", motion.Pulse, []string{"heart", "hearts", "star", "thumbs", "smile", "frown", "share", "user", "users"}},
	{"media", motion.Scale, []string{"play", "pause", "stop", "skip", "volume", "music", "camera", "image", "video", "mic", "headphones", "film"}},
	{"files", motion.Bounce, []string{"file", "folder", "download", "upload", "paperclip", "copy", "clipboard", "archive", "save"}},
	{"status", motion.Draw, []string{"alert", "info", "help", "shield", "activity", "signature", "badge", "circle", "square"}},
	{"devices", motion.Shake, []string{"monitor", "laptop", "smartphone", "tablet", "printer", "server", "wifi", "bluetooth", "battery", "cpu", "drive"}},
	{"commerce", motion.Bounce, []string{"shopping", "cart", "credit", "dollar", "tag", "gift", "package", "truck", "receipt", "wallet"}},
	{"navigation", motion.Translate, []string{"map", "pin", "navigation", "compass", "globe", "flag", "anchor", "rocket", "plane", "car"}},
	{"development", motion.None, []string{"code", "terminal", "git", "bug", "database", "layers", "braces", "brackets"}},
	{"interface", motion.Scale, []string{"menu", "x", "check", "plus", "minus", "search", "filter", "settings", "sliders", "home", "more", "grid", "list", "eye", "lock", "unlock", "log", "link", "trash", "edit", "pencil"}},
}

// Categorize assigns a category to an icon name that came without metadata
func Categorize(name string) string {
	if rule, ok := matchRule(name); ok {
		return rule.category
	}
	return CategoryOther
}

// DefaultMotion picks a motion family for an icon name that came without metadata
func DefaultMotion(name string) motion.MotionType {
	if rule, ok := matchRule(name); ok {
		return rule.motion
	}
	return motion.DefaultMotion
}

func matchRule(name string) (categoryRule, bool) {
	tokens := strings.Split(strings.ToLower(name), "-")
	for _, rule := range rules {
		for _, want := range rule.tokens {
			for _, tok := range tokens {
				if tok == want {
					return rule, true
				}
			}
		}
	}
	return categoryRule{}, false
}

// ComponentName converts a kebab-case icon name to its PascalCase component name
func ComponentName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// CategoryCount is one row of a category histogram
type CategoryCount struct {
	Name  string
	Count int
}

// Categories counts icons per category, sorted by name
func Categories(icons []domain.Icon) []CategoryCount {
	counts := make(map[string]int)
	for _, icon := range icons {
		counts[icon.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
