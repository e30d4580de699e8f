package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"livelyicons/internal/motion"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	exampleStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("lively Help"))
	help.WriteString("\n")

	sections := []string{"Navigation", "Animation Preview", "Results", "Other"}
	for i, group := range r.keys.FullHelp() {
		help.WriteString(sectionStyle.Render(sections[i]))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", h.Key)), descStyle.Render(h.Desc)))
		}
		help.WriteString("\n")
	}

	help.WriteString(sectionStyle.Render("Query Filters"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("motion:<type>  "), descStyle.Render("only icons of one motion family")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("category:<name>"), descStyle.Render("only icons whose category starts with name")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("trigger:<type> "), descStyle.Render("preview with this trigger")))
	help.WriteString("\n")
	help.WriteString(exampleStyle.Render("  Filter examples: arrow motion:translate, category:weather, check trigger:loop"))
	help.WriteString("\n")

	motions := make([]string, len(motion.MotionTypes))
	for i, m := range motion.MotionTypes {
		motions[i] = string(m)
	}
	triggers := make([]string, len(motion.TriggerTypes))
	for i, t := range motion.TriggerTypes {
		triggers[i] = string(t)
	}
	help.WriteString(exampleStyle.Render("  Motions: " + strings.Join(motions, ", ")))
	help.WriteString("\n")
	help.WriteString(exampleStyle.Render("  Triggers: " + strings.Join(triggers, ", ")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps() *HelpOps {
	return &HelpOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to leave the alternate screen before restoring ours
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	return RunPager(strings.NewReader(helpContent))
}
