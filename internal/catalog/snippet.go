package catalog

import (
	"fmt"
	"strings"

	"livelyicons/internal/domain"
	"livelyicons/internal/motion"
)

// Snippet renders the JSX usage of an icon. Props equal to the icon's own
// defaults are left out, so the plain case is just <Heart />.
func Snippet(icon domain.Icon, m motion.MotionType, t motion.TriggerType, animated *bool) string {
	component := icon.Component
	if component == "" {
		component = ComponentName(icon.Name)
	}

	var props []string
	if m != "" && m != icon.Motion {
		props = append(props, fmt.Sprintf("motionType=%q", m))
	}
	if t != "" && t != motion.DefaultTrigger {
		props = append(props, fmt.Sprintf("trigger=%q", t))
	}
	if animated != nil {
		props = append(props, fmt.Sprintf("animated={%t}", *animated))
	}

	if len(props) == 0 {
		return "<" + component + " />"
	}
	return "<" + component + " " + strings.Join(props, " ") + " />"
}
