package motion

import "strings"

// MotionType selects the animation family applied to an icon
type MotionType string

const (
	Scale     MotionType = "scale"
	Rotate    MotionType = "rotate"
	Translate MotionType = "translate"
	Shake     MotionType = "shake"
	Pulse     MotionType = "pulse"
	Bounce    MotionType = "bounce"
	Draw      MotionType = "draw"
	Spin      MotionType = "spin"
	None      MotionType = "none"
)

// DefaultMotion is used when no motion type is given or the given one is unknown
const DefaultMotion = Scale

// MotionTypes lists every motion type in display order
var MotionTypes = []MotionType{Scale, Rotate, Translate, Shake, Pulse, Bounce, Draw, Spin, None}

// TriggerType decides when an animation runs
type TriggerType string

const (
	Hover  TriggerType = "hover"
	Loop   TriggerType = "loop"
	Mount  TriggerType = "mount"
	InView TriggerType = "inView"

	// Click and NoTrigger are modelled by the CLI and demo only; the resolver
	// treats them like Hover.
	Click     TriggerType = "click"
	NoTrigger TriggerType = "none"
)

// DefaultTrigger is used when no trigger is given or the given one is unknown
const DefaultTrigger = Hover

// TriggerTypes lists every trigger type in display order
var TriggerTypes = []TriggerType{Hover, Loop, Mount, InView, Click, NoTrigger}

// Valid reports whether m is one of the known motion types
func (m MotionType) Valid() bool {
	for _, known := range MotionTypes {
		if m == known {
			return true
		}
	}
	return false
}

func (m MotionType) String() string { return string(m) }

// Valid reports whether t is one of the known trigger types
func (t TriggerType) Valid() bool {
	for _, known := range TriggerTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t TriggerType) String() string { return string(t) }

// ParseMotionType normalizes external input into a MotionType.
// Unknown or empty input yields DefaultMotion and false.
func ParseMotionType(s string) (MotionType, bool) {
	key := normalizeKey(s)
	for _, m := range MotionTypes {
		if key == normalizeKey(string(m)) {
			return m, true
		}
	}
	return DefaultMotion, false
}

// ParseTriggerType normalizes external input into a TriggerType.
// "in-view", "inview" and "in_view" all map to InView.
// Unknown or empty input yields DefaultTrigger and false.
func ParseTriggerType(s string) (TriggerType, bool) {
	key := normalizeKey(s)
	for _, t := range TriggerTypes {
		if key == normalizeKey(string(t)) {
			return t, true
		}
	}
	return DefaultTrigger, false
}

// Next returns the motion type after m, wrapping around
func (m MotionType) Next() MotionType {
	return MotionTypes[(indexOfMotion(m)+1)%len(MotionTypes)]
}

// Prev returns the motion type before m, wrapping around
func (m MotionType) Prev() MotionType {
	i := indexOfMotion(m) - 1
	if i < 0 {
		i = len(MotionTypes) - 1
	}
	return MotionTypes[i]
}

// Next returns the trigger type after t, wrapping around
func (t TriggerType) Next() TriggerType {
	i := 0
	for j, known := range TriggerTypes {
		if known == t {
			i = j
			break
		}
	}
	return TriggerTypes[(i+1)%len(TriggerTypes)]
}

func indexOfMotion(m MotionType) int {
	for i, known := range MotionTypes {
		if known == m {
			return i
		}
	}
	return 0
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}
