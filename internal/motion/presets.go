package motion

// Preset is the fixed {variants, transition} record for one motion type
type Preset struct {
	Variants   Variants   `json:"variants"`
	Transition Transition `json:"transition"`
}

// Clone returns a deep copy of the preset
func (p Preset) Clone() Preset {
	return Preset{Variants: p.Variants.Clone(), Transition: p.Transition.Clone()}
}

// presets is read-only after init; PresetFor hands out copies
var presets = map[MotionType]Preset{
	Scale: {
		Variants: Variants{
			Initial: TargetState{"scale": Num(1)},
			Hover:   TargetState{"scale": Num(1.15)},
		},
		Transition: Transition{Duration: 0.2, Ease: EaseNamed("easeOut")},
	},
	Rotate: {
		Variants: Variants{
			Initial: TargetState{"rotate": Num(0)},
			Hover:   TargetState{"rotate": Keyframes(0, -15, 15, -10, 0)},
		},
		Transition: Transition{Duration: 0.5, Ease: EaseNamed("easeInOut")},
	},
	Translate: {
		Variants: Variants{
			Initial: TargetState{"x": Num(0), "y": Num(0)},
			Hover:   TargetState{"x": Num(2), "y": Num(-2)},
		},
		Transition: Transition{Duration: 0.25, Ease: EaseNamed("easeOut")},
	},
	Shake: {
		Variants: Variants{
			Initial: TargetState{"x": Num(0)},
			Hover:   TargetState{"x": Keyframes(0, -2, 2, -2, 2, 0)},
		},
		Transition: Transition{Duration: 0.4, Ease: EaseNamed("easeInOut")},
	},
	Pulse: {
		Variants: Variants{
			Initial: TargetState{"scale": Num(1), "opacity": Num(1)},
			Hover:   TargetState{"scale": Keyframes(1, 1.1, 1), "opacity": Keyframes(1, 0.8, 1)},
		},
		Transition: Transition{Duration: 0.6, Ease: EaseNamed("easeInOut")},
	},
	Bounce: {
		Variants: Variants{
			Initial: TargetState{"y": Num(0)},
			Hover:   TargetState{"y": Keyframes(0, -4, 0, -2, 0)},
		},
		Transition: Transition{Duration: 0.6, Ease: EaseBezier(0.34, 1.56, 0.64, 1)},
	},
	Draw: {
		Variants: Variants{
			Initial: TargetState{"pathLength": Num(1), "opacity": Num(1)},
			Hover:   TargetState{"pathLength": Keyframes(1, 0, 1), "opacity": Num(1)},
		},
		Transition: Transition{Duration: 0.8, Ease: EaseNamed("easeInOut")},
	},
	Spin: {
		Variants: Variants{
			Initial: TargetState{"rotate": Num(0)},
			Hover:   TargetState{"rotate": Num(360)},
		},
		Transition: Transition{Duration: 1, Ease: EaseNamed("linear")},
	},
	None: {
		Variants: Variants{
			Initial: TargetState{},
			Hover:   TargetState{},
		},
		Transition: Transition{Duration: 0},
	},
}

// PresetFor returns a copy of the preset for m.
// Unknown motion types get the scale preset.
func PresetFor(m MotionType) Preset {
	p, ok := presets[m]
	if !ok {
		p = presets[DefaultMotion]
	}
	return p.Clone()
}
