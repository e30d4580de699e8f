package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"livelyicons/internal/ui/logic"
)

// minPreviewWidth is the terminal width below which the preview is hidden
const minPreviewWidth = 90

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	TextInput     string
	Rows          []logic.Row
	SelectedIndex int
	ViewportStart int
	ListHeight    int
	MatchText     string // free text the rows were ranked against
	TotalIcons    int
	Query         logic.Query
	SortMode      logic.SortMode
	Preview       *Preview
	ShowPreview   bool
	Scanning      bool
	Watching      bool
	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	icons   *IconRenderer
	preview *PreviewRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		icons:   NewIconRenderer(styles),
		preview: NewPreviewRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")
	content.WriteString(state.TextInput)
	content.WriteString("\n\n")

	list := r.renderList(state)
	if state.ShowPreview && state.Preview != nil && state.Width >= minPreviewWidth {
		listWidth := state.Width/2 - 2
		previewWidth := state.Width - listWidth - 8
		list = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(listWidth).Render(list),
			r.preview.Render(*state.Preview, previewWidth, state.ListHeight),
		)
	}
	content.WriteString(list)

	footer := r.renderFooter(state)

	// Push the footer to the bottom of the screen
	currentLines := strings.Count(content.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if padding := availableLines - currentLines - footerLines; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	} else {
		content.WriteString("\n")
	}
	content.WriteString(footer)

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("lively")

	var indicators []string
	if state.Scanning {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, r.styles.Scan.Render(fmt.Sprintf("%s Scanning", spinner[frame])))
	}
	if state.Watching {
		indicators = append(indicators, r.styles.Dim.Render("watching"))
	}
	if filters := filterSummary(state.Query); filters != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[%s]", filters)))
	}
	indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%d/%d", len(state.Rows), state.TotalIcons)))
	indicators = append(indicators, r.styles.Dim.Render("sort: "+state.SortMode.String()))

	right := strings.Join(indicators, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func filterSummary(q logic.Query) string {
	var parts []string
	if q.Motion != "" {
		parts = append(parts, "motion:"+string(q.Motion))
	}
	if q.Category != "" {
		parts = append(parts, "category:"+q.Category)
	}
	if q.Trigger != "" {
		parts = append(parts, "trigger:"+string(q.Trigger))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) renderList(state ViewState) string {
	if len(state.Rows) == 0 {
		if state.Scanning {
			return r.styles.Dim.Render("Looking for icons...")
		}
		return r.styles.Dim.Render("No icons match.")
	}

	height := state.ListHeight
	if height <= 0 {
		height = len(state.Rows)
	}
	start := state.ViewportStart
	end := start + height
	if end > len(state.Rows) {
		end = len(state.Rows)
	}

	var lines []string
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.icons.RenderRow(state.Rows[i], i == state.SelectedIndex, state.MatchText))
	}
	if end < len(state.Rows) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Rows)-end)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	if state.StatusMessage != "" {
		lines = append(lines, r.styles.Filter.Render(state.StatusMessage))
	}
	if len(state.Query.Unknown) > 0 {
		lines = append(lines, r.styles.StatusError.Render("Unknown filter: "+strings.Join(state.Query.Unknown, ", ")))
	}
	if state.HelpView != "" {
		lines = append(lines, state.HelpView)
	} else {
		lines = append(lines, r.styles.Help.Render("Press F1 for help"))
	}
	return strings.Join(lines, "\n")
}
