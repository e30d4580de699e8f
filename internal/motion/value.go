package motion

import (
	"encoding/json"
	"fmt"
)

// Value is a single animation target or an ordered keyframe sequence
type Value struct {
	frames    []float64
	keyframed bool
}

// Num creates a scalar value
func Num(v float64) Value {
	return Value{frames: []float64{v}}
}

// Keyframes creates a keyframe sequence value
func Keyframes(vs ...float64) Value {
	frames := make([]float64, len(vs))
	copy(frames, vs)
	return Value{frames: frames, keyframed: true}
}

// IsKeyframes reports whether the value is a keyframe sequence
func (v Value) IsKeyframes() bool { return v.keyframed }

// Frames returns a copy of the samples. A scalar has exactly one.
func (v Value) Frames() []float64 {
	out := make([]float64, len(v.frames))
	copy(out, v.frames)
	return out
}

// Final returns the value the property settles on
func (v Value) Final() float64 {
	if len(v.frames) == 0 {
		return 0
	}
	return v.frames[len(v.frames)-1]
}

// Equal reports whether two values hold the same samples in the same shape
func (v Value) Equal(o Value) bool {
	if v.keyframed != o.keyframed || len(v.frames) != len(o.frames) {
		return false
	}
	for i := range v.frames {
		if v.frames[i] != o.frames[i] {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	if v.keyframed {
		return fmt.Sprint(v.frames)
	}
	return fmt.Sprint(v.Final())
}

// MarshalJSON encodes scalars as numbers and keyframes as arrays
func (v Value) MarshalJSON() ([]byte, error) {
	if v.keyframed {
		return json.Marshal(v.frames)
	}
	return json.Marshal(v.Final())
}

// TargetState maps a visual property (scale, rotate, x, y, opacity, pathLength)
// to the value it animates towards
type TargetState map[string]Value

// Clone returns a deep copy of the state
func (s TargetState) Clone() TargetState {
	if s == nil {
		return nil
	}
	out := make(TargetState, len(s))
	for k, v := range s {
		out[k] = Value{frames: append([]float64(nil), v.frames...), keyframed: v.keyframed}
	}
	return out
}

// Variants are the two named states every preset defines
type Variants struct {
	Initial TargetState `json:"initial"`
	Hover   TargetState `json:"hover"`
}

// Clone returns a deep copy of the variants
func (v Variants) Clone() Variants {
	return Variants{Initial: v.Initial.Clone(), Hover: v.Hover.Clone()}
}

// Ease is either a named easing curve or a cubic-bezier control point list
type Ease struct {
	Name   string
	Bezier []float64
}

// EaseNamed returns a named easing curve such as "easeInOut"
func EaseNamed(name string) *Ease {
	return &Ease{Name: name}
}

// EaseBezier returns a cubic-bezier easing curve
func EaseBezier(x1, y1, x2, y2 float64) *Ease {
	return &Ease{Bezier: []float64{x1, y1, x2, y2}}
}

// Clone returns a deep copy of the ease
func (e *Ease) Clone() *Ease {
	if e == nil {
		return nil
	}
	out := &Ease{Name: e.Name}
	if e.Bezier != nil {
		out.Bezier = append([]float64(nil), e.Bezier...)
	}
	return out
}

// MarshalJSON encodes named eases as strings and bezier curves as arrays
func (e Ease) MarshalJSON() ([]byte, error) {
	if len(e.Bezier) > 0 {
		return json.Marshal(e.Bezier)
	}
	return json.Marshal(e.Name)
}

// Repeat is a repeat count. Infinite repeats forever.
type Repeat int

// Infinite marks a transition that never stops repeating
const Infinite Repeat = -1

// MarshalJSON encodes Infinite as the string "Infinity"
func (r Repeat) MarshalJSON() ([]byte, error) {
	if r == Infinite {
		return json.Marshal("Infinity")
	}
	return json.Marshal(int(r))
}

// RepeatLoop is the only repeat type the resolver emits
const RepeatLoop = "loop"

// Transition carries the timing of an animation
type Transition struct {
	Duration   float64   `json:"duration"`
	Delay      float64   `json:"delay,omitempty"`
	Ease       *Ease     `json:"ease,omitempty"`
	Repeat     Repeat    `json:"repeat,omitempty"`
	RepeatType string    `json:"repeatType,omitempty"`
	Times      []float64 `json:"times,omitempty"`
}

// Clone returns a deep copy of the transition
func (t Transition) Clone() Transition {
	out := t
	out.Ease = t.Ease.Clone()
	if t.Times != nil {
		out.Times = append([]float64(nil), t.Times...)
	}
	return out
}

// Repeating reports whether the transition repeats at all
func (t Transition) Repeating() bool {
	return t.Repeat != 0
}
