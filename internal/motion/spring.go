package motion

import (
	"math"
	"strings"
)

const (
	springStep        = 1.0 / 240
	maxSpringDuration = 10.0
	restDelta         = 0.005
	restSpeed         = 0.01
)

// Spring is a damped harmonic oscillator driving a value from 0 to 1.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

func (s Spring) mass() float64 {
	if s.Mass <= 0 {
		return 1
	}
	return s.Mass
}

// DampingRatio is 1 for critical damping, above 1 for overdamped springs.
func (s Spring) DampingRatio() float64 {
	if s.Stiffness <= 0 {
		return 0
	}
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.mass()))
}

// run integrates the spring with semi-implicit Euler until visit returns
// false or the duration cap is hit.
func (s Spring) run(visit func(t, x, v float64) bool) {
	x, v := 0.0, 0.0
	m := s.mass()
	for t := 0.0; t <= maxSpringDuration; t += springStep {
		if !visit(t, x, v) {
			return
		}
		a := (s.Stiffness*(1-x) - s.Damping*v) / m
		v += a * springStep
		x += v * springStep
	}
}

// Progress returns the spring position t seconds after release.
func (s Spring) Progress(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if s.Stiffness <= 0 {
		return 1
	}
	pos := 1.0
	s.run(func(at, x, _ float64) bool {
		if at >= t {
			pos = x
			return false
		}
		return true
	})
	return pos
}

// SettleTime is the time the spring needs to come to rest at its target.
func (s Spring) SettleTime() float64 {
	if s.Stiffness <= 0 {
		return 0
	}
	settled := maxSpringDuration
	s.run(func(t, x, v float64) bool {
		if math.Abs(1-x) < restDelta && math.Abs(v) < restSpeed {
			settled = t
			return false
		}
		return true
	})
	return settled
}

// Easing samples the spring into a CSS linear() timing function spanning
// SettleTime. samples below 2 are raised to 2.
func (s Spring) Easing(samples int) string {
	if samples < 2 {
		samples = 2
	}
	total := s.SettleTime()
	if total == 0 {
		return "linear"
	}

	stops := make([]string, 0, samples+1)
	for i := 0; i <= samples; i++ {
		f := float64(i) / float64(samples)
		y := 1.0
		if i < samples {
			y = round3(s.Progress(f * total))
		}
		if i == 0 {
			stops = append(stops, "0")
			continue
		}
		stops = append(stops, num(y)+" "+num(round3(f*100))+"%")
	}
	return "linear(" + strings.Join(stops, ", ") + ")"
}
