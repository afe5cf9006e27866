package motion

import (
	"strings"
)

// Kind selects how a transition advances over time.
type Kind string

const (
	KindTween  Kind = "tween"
	KindSpring Kind = "spring"
)

// DefaultDuration applies to tweens declared without a duration.
const DefaultDuration = 0.3

// springSamples is the resolution of generated spring easings.
const springSamples = 20

// Transition describes how a value moves into a named state. Times are in
// seconds.
type Transition struct {
	Type     Kind    `json:"type" yaml:"type"`
	Duration float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
	Ease     Ease    `json:"ease,omitempty" yaml:"ease,omitempty"`
	Delay    float64 `json:"delay,omitempty" yaml:"delay,omitempty"`

	Stiffness float64 `json:"stiffness,omitempty" yaml:"stiffness,omitempty"`
	Damping   float64 `json:"damping,omitempty" yaml:"damping,omitempty"`
	Mass      float64 `json:"mass,omitempty" yaml:"mass,omitempty"`

	// StaggerChildren and DelayChildren orchestrate the children of a
	// container; IndexDelay offsets items of a list keyed by their index.
	StaggerChildren float64 `json:"staggerChildren,omitempty" yaml:"stagger_children,omitempty"`
	DelayChildren   float64 `json:"delayChildren,omitempty" yaml:"delay_children,omitempty"`
	IndexDelay      float64 `json:"indexDelay,omitempty" yaml:"index_delay,omitempty"`

	Repeat bool `json:"repeat,omitempty" yaml:"repeat,omitempty"`
}

// Tween returns a fixed-duration eased transition.
func Tween(duration float64, ease Ease) Transition {
	return Transition{Type: KindTween, Duration: duration, Ease: ease}
}

// SpringTransition returns a physics-driven transition.
func SpringTransition(stiffness, damping float64) Transition {
	return Transition{Type: KindSpring, Stiffness: stiffness, Damping: damping}
}

// WithDelay returns a copy starting after delay seconds.
func (t Transition) WithDelay(delay float64) Transition {
	t.Delay = delay
	return t
}

// ForIndex returns the transition for list item i, adding i*IndexDelay to
// the start delay.
func (t Transition) ForIndex(i int) Transition {
	if t.IndexDelay == 0 || i <= 0 {
		return t
	}
	t.Delay = round3(t.Delay + float64(i)*t.IndexDelay)
	return t
}

// ChildDelay is the start delay of the i-th child of a staggering container.
func (t Transition) ChildDelay(i int) float64 {
	if i < 0 {
		i = 0
	}
	return round3(t.DelayChildren + float64(i)*t.StaggerChildren)
}

func (t Transition) spring() Spring {
	return Spring{Stiffness: t.Stiffness, Damping: t.Damping, Mass: t.Mass}
}

// Length is the active time of the transition, excluding its delay.
func (t Transition) Length() float64 {
	if t.Type == KindSpring {
		return t.spring().SettleTime()
	}
	if t.Duration <= 0 {
		return DefaultDuration
	}
	return t.Duration
}

// Timing is the CSS timing function equivalent of the transition.
func (t Transition) Timing() string {
	if t.Type == KindSpring {
		return t.spring().Easing(springSamples)
	}
	if t.Ease == "" {
		return EaseOut.CSS()
	}
	return t.Ease.CSS()
}

// CSS renders a CSS transition value covering the given properties.
func (t Transition) CSS(properties ...string) string {
	if len(properties) == 0 {
		properties = []string{"all"}
	}
	timing := t.Timing()
	length := num(round3(t.Length())) + "s"
	delay := num(round3(t.Delay)) + "s"

	parts := make([]string, 0, len(properties))
	for _, p := range properties {
		parts = append(parts, strings.Join([]string{p, length, timing, delay}, " "))
	}
	return strings.Join(parts, ", ")
}
