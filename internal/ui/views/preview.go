package views

import (
	"encoding/json"
	"fmt"
	"strings"

	"livelyicons/internal/animation"
	"livelyicons/internal/domain"
)

// Preview is the resolved animation of the selected icon
type Preview struct {
	Icon     domain.Icon
	Override *bool
	Context  animation.Context
	Result   animation.Result
}

// Reason explains which rule of the precedence chain decided Animated
func (p Preview) Reason() string {
	switch {
	case p.Override != nil:
		return "override"
	case !p.Context.Enabled:
		return "disabled"
	case p.Context.ReducedMotion:
		return "reduced motion"
	default:
		return "default"
	}
}

// PreviewRenderer renders the preview pane
type PreviewRenderer struct {
	styles *Styles
}

// NewPreviewRenderer creates a new preview renderer
func NewPreviewRenderer(styles *Styles) *PreviewRenderer {
	return &PreviewRenderer{styles: styles}
}

// Render renders the preview box, clipped to height lines of content
func (r *PreviewRenderer) Render(p Preview, width, height int) string {
	return r.styles.Preview.Width(width).Render(strings.Join(r.Lines(p, height), "\n"))
}

// Lines returns the unboxed preview content
func (r *PreviewRenderer) Lines(p Preview, height int) []string {
	var lines []string
	lines = append(lines, fmt.Sprintf("%s  %s",
		r.styles.Highlight.Render(p.Icon.Name),
		r.styles.Dim.Render("<"+p.Icon.Component+" />")))

	animated := r.styles.Static.Render("static")
	if p.Result.Animated {
		animated = r.styles.Animated.Render("animated")
	}
	lines = append(lines, fmt.Sprintf("%s %s  %s %s  %s (%s)",
		r.styles.Label.Render("motion"), p.Result.Motion,
		r.styles.Label.Render("trigger"), p.Result.Trigger,
		animated, p.Reason()))

	if p.Override != nil {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("override: animated=%t", *p.Override)))
	}
	if len(p.Icon.Keywords) > 0 {
		lines = append(lines, r.styles.Keyword.Render(strings.Join(p.Icon.Keywords, ", ")))
	}
	lines = append(lines, "")

	lines = append(lines, r.section("descriptor", p.Result.Descriptor)...)
	if !p.Result.Draw.IsEmpty() {
		lines = append(lines, r.section("path", p.Result.Draw)...)
	}
	if !p.Result.Wrapper.IsEmpty() {
		lines = append(lines, r.section("wrapper", p.Result.Wrapper)...)
	}

	if height > 0 && len(lines) > height {
		lines = append(lines[:height-1], r.styles.Scroll.Render("…"))
	}
	return lines
}

func (r *PreviewRenderer) section(label string, v any) []string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return []string{r.styles.StatusError.Render(fmt.Sprintf("%s: %v", label, err))}
	}
	lines := []string{r.styles.Label.Render(label)}
	return append(lines, strings.Split(string(data), "\n")...)
}
