package animation

import "livelyicons/internal/motion"

// Variant labels used by every descriptor
const (
	LabelInitial = "initial"
	LabelHover   = "hover"
)

// Viewport gates in-view animations
type Viewport struct {
	Once   bool    `json:"once"`
	Amount float64 `json:"amount"`
}

// inViewport is the only viewport the resolver emits: play once at 50% visibility
func inViewport() *Viewport {
	return &Viewport{Once: true, Amount: 0.5}
}

// Descriptor is the prop bag for the outer animated element
type Descriptor struct {
	Initial     string             `json:"initial"`
	Animate     string             `json:"animate,omitempty"`
	WhileHover  string             `json:"whileHover,omitempty"`
	WhileInView string             `json:"whileInView,omitempty"`
	Viewport    *Viewport          `json:"viewport,omitempty"`
	Variants    motion.Variants    `json:"variants"`
	Transition  *motion.Transition `json:"transition,omitempty"`
}

// Plays reports whether the descriptor asks the renderer to animate at all
func (d Descriptor) Plays() bool {
	return d.Animate != "" || d.WhileHover != "" || d.WhileInView != ""
}

// DrawDescriptor drives the stroke-path sub-element of a draw icon.
// The zero value means "apply nothing".
type DrawDescriptor struct {
	Initial    motion.TargetState `json:"initial,omitempty"`
	Animate    motion.TargetState `json:"animate,omitempty"`
	Variants   *motion.Variants   `json:"variants,omitempty"`
	Transition *motion.Transition `json:"transition,omitempty"`
}

// IsEmpty reports whether no key is set
func (d DrawDescriptor) IsEmpty() bool {
	return d.Initial == nil && d.Animate == nil && d.Variants == nil && d.Transition == nil
}

// WrapperDescriptor gates a draw icon's container on pointer or visibility so
// the inner path picks its variant from the same event
type WrapperDescriptor struct {
	Initial     string    `json:"initial,omitempty"`
	WhileHover  string    `json:"whileHover,omitempty"`
	WhileInView string    `json:"whileInView,omitempty"`
	Viewport    *Viewport `json:"viewport,omitempty"`
}

// IsEmpty reports whether no key is set
func (w WrapperDescriptor) IsEmpty() bool {
	return w == WrapperDescriptor{}
}

// Result bundles everything the resolver derives for one icon instance
type Result struct {
	Animated   bool               `json:"animated"`
	Motion     motion.MotionType  `json:"motion"`
	Trigger    motion.TriggerType `json:"trigger"`
	Descriptor Descriptor         `json:"descriptor"`
	Draw       DrawDescriptor     `json:"draw"`
	Wrapper    WrapperDescriptor  `json:"wrapper"`
}
