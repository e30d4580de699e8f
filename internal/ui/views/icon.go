package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"livelyicons/internal/search"
	"livelyicons/internal/ui/logic"
)

// nameColumn is the padded width of the icon name column
const nameColumn = 24

// IconRenderer handles rendering of result rows
type IconRenderer struct {
	styles *Styles
}

// NewIconRenderer creates a new icon renderer
func NewIconRenderer(styles *Styles) *IconRenderer {
	return &IconRenderer{styles: styles}
}

// RenderRow renders one result: cursor, highlighted name, category, motion
// badge and, when the row was ranked, its score and matching keyword
func (r *IconRenderer) RenderRow(row logic.Row, isSelected bool, matchText string) string {
	base := lipgloss.NewStyle()
	highlight := r.styles.Highlight
	if isSelected {
		bg := lipgloss.Color("238")
		base = base.Background(bg)
		highlight = highlight.Background(bg)
	}

	var parts []string

	cursor := "  "
	if isSelected {
		cursor = "> "
	}
	parts = append(parts, base.Render(cursor))

	parts = append(parts, r.renderName(row.Icon.Name, matchText, base, highlight))
	if pad := nameColumn - len([]rune(row.Icon.Name)); pad > 0 {
		parts = append(parts, base.Render(strings.Repeat(" ", pad)))
	}

	parts = append(parts, base.Render(" "))
	parts = append(parts, r.styles.Category.Inherit(base).Render(fmt.Sprintf("%-13s", row.Icon.Category)))

	motionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(GetMotionColor(row.Icon.Motion))).Inherit(base)
	parts = append(parts, motionStyle.Render(fmt.Sprintf("%-9s", row.Icon.Motion)))

	if matchText != "" {
		parts = append(parts, r.styles.Score.Inherit(base).Render(fmt.Sprintf("%6.1f", row.Score)))
	}
	if row.Keyword != "" {
		parts = append(parts, r.styles.Keyword.Inherit(base).Render(fmt.Sprintf(" (%s)", row.Keyword)))
	}

	return strings.Join(parts, "")
}

// renderName emphasises the runes of name that matched text
func (r *IconRenderer) renderName(name, text string, base, highlight lipgloss.Style) string {
	if text == "" {
		return base.Render(name)
	}
	positions := search.HighlightPositions(text, name)
	if len(positions) == 0 {
		return base.Render(name)
	}

	marked := make(map[int]bool, len(positions))
	for _, p := range positions {
		marked[p] = true
	}

	var b strings.Builder
	var run []rune
	runMarked := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runMarked {
			b.WriteString(highlight.Render(string(run)))
		} else {
			b.WriteString(base.Render(string(run)))
		}
		run = run[:0]
	}
	for i, c := range []rune(name) {
		if marked[i] != runMarked {
			flush()
			runMarked = marked[i]
		}
		run = append(run, c)
	}
	flush()
	return b.String()
}
