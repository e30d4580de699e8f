package animation

import "livelyicons/internal/motion"

// drawDescriptor returns the stroke keyframes for a draw icon's path
func drawDescriptor(t motion.TriggerType) DrawDescriptor {
	switch t {
	case motion.Loop:
		// draw in, hold, erase, repeat
		return DrawDescriptor{
			Initial: motion.TargetState{"pathLength": motion.Num(0), "opacity": motion.Num(0.5)},
			Animate: motion.TargetState{
				"pathLength": motion.Keyframes(0, 1, 1, 0),
				"opacity":    motion.Keyframes(0.5, 1, 1, 0.5),
			},
			Transition: &motion.Transition{
				Duration: 3,
				Repeat:   motion.Infinite,
				Times:    []float64{0, 0.4, 0.6, 1},
			},
		}
	case motion.Mount:
		return DrawDescriptor{
			Initial:    motion.TargetState{"pathLength": motion.Num(0), "opacity": motion.Num(0.3)},
			Animate:    motion.TargetState{"pathLength": motion.Num(1), "opacity": motion.Num(1)},
			Transition: drawInTransition(),
		}
	case motion.InView:
		// the wrapper's whileInView selects the hover variant
		return DrawDescriptor{
			Variants: &motion.Variants{
				Initial: motion.TargetState{"pathLength": motion.Num(0), "opacity": motion.Num(0.3)},
				Hover:   motion.TargetState{"pathLength": motion.Num(1), "opacity": motion.Num(1)},
			},
			Transition: drawInTransition(),
		}
	default:
		return DrawDescriptor{
			Variants: &motion.Variants{
				Initial: motion.TargetState{"pathLength": motion.Num(1), "opacity": motion.Num(1)},
				Hover:   motion.TargetState{"pathLength": motion.Keyframes(1, 0, 1), "opacity": motion.Num(1)},
			},
			Transition: &motion.Transition{Duration: 0.8, Ease: motion.EaseNamed("easeInOut")},
		}
	}
}

func drawInTransition() *motion.Transition {
	return &motion.Transition{Duration: 0.8, Ease: motion.EaseNamed("easeOut")}
}

// wrapperDescriptor is only non-empty for hover and in-view draws; loop and
// mount paths drive themselves through their own animate prop
func wrapperDescriptor(t motion.TriggerType) WrapperDescriptor {
	switch t {
	case motion.Loop, motion.Mount:
		return WrapperDescriptor{}
	case motion.InView:
		return WrapperDescriptor{
			Initial:     LabelInitial,
			WhileInView: LabelHover,
			Viewport:    inViewport(),
		}
	default:
		return WrapperDescriptor{Initial: LabelInitial, WhileHover: LabelHover}
	}
}
