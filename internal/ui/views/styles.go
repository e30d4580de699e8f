package views

import (
	"github.com/charmbracelet/lipgloss"

	"livelyicons/internal/motion"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Scan        lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Category    lipgloss.Style
	Keyword     lipgloss.Style
	Score       lipgloss.Style
	Preview     lipgloss.Style
	Label       lipgloss.Style
	Animated    lipgloss.Style
	Static      lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Scan: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dim:  lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Category:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Keyword:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Score:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Preview: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Animated:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Static:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// GetMotionColor returns the color used for a motion type badge
func GetMotionColor(m motion.MotionType) string {
	switch m {
	case motion.Scale, motion.Pulse:
		return "78" // green
	case motion.Rotate, motion.Spin:
		return "51" // cyan
	case motion.Translate, motion.Bounce:
		return "33" // blue
	case motion.Shake:
		return "203" // red
	case motion.Draw:
		return "213" // pink
	default:
		return "241" // gray
	}
}
