// Package animation derives declarative animation descriptors from a motion
// type, a trigger type and the caller's animation preferences. It never
// animates anything itself: no timers, no I/O, no shared state.
package animation

import "livelyicons/internal/motion"

// Context is the ambient animation configuration, passed explicitly
type Context struct {
	// Enabled is the provider-level "animations on" switch
	Enabled bool
	// ReducedMotion is the platform accessibility signal
	ReducedMotion bool
}

// DefaultContext has animations enabled and no reduced-motion request
func DefaultContext() Context {
	return Context{Enabled: true}
}

// Bool returns a pointer to b, for the override argument
func Bool(b bool) *bool {
	return &b
}

// IsAnimated resolves whether an icon should animate.
// An explicit override wins outright, even over reduced motion. Otherwise the
// context switch must be on and reduced motion must be off.
func IsAnimated(override *bool, ctx Context) bool {
	switch {
	case override != nil:
		return *override
	case !ctx.Enabled:
		return false
	case ctx.ReducedMotion:
		return false
	default:
		return true
	}
}

// Resolve builds the primary, draw and wrapper descriptors for one icon.
// Unknown motion types behave like scale and unknown triggers like hover.
func Resolve(override *bool, ctx Context, m motion.MotionType, t motion.TriggerType) Result {
	if !m.Valid() {
		m = motion.DefaultMotion
	}
	if !t.Valid() {
		t = motion.DefaultTrigger
	}

	animated := IsAnimated(override, ctx)
	preset := motion.PresetFor(m)

	result := Result{
		Animated:   animated,
		Motion:     m,
		Trigger:    t,
		Descriptor: primary(animated, preset, t),
	}

	if animated && m == motion.Draw {
		result.Draw = drawDescriptor(t)
		result.Wrapper = wrapperDescriptor(t)
	}

	return result
}

func primary(animated bool, preset motion.Preset, t motion.TriggerType) Descriptor {
	d := Descriptor{
		Initial:  LabelInitial,
		Variants: preset.Variants,
	}
	if !animated {
		return d
	}

	transition := preset.Transition
	switch t {
	case motion.Loop:
		d.Animate = LabelHover
		transition.Repeat = motion.Infinite
		transition.RepeatType = motion.RepeatLoop
	case motion.Mount:
		d.Animate = LabelHover
	case motion.InView:
		d.WhileInView = LabelHover
		d.Viewport = inViewport()
	default:
		d.WhileHover = LabelHover
	}
	d.Transition = &transition

	return d
}
