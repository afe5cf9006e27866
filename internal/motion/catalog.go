package motion

import (
	"errors"
	"fmt"
	"slices"
)

// Names of the variant tables in the default catalog.
const (
	FadeInUp         = "fadeInUp"
	FadeIn           = "fadeIn"
	FadeInSlow       = "fadeInSlow"
	StaggerContainer = "staggerContainer"
	ScaleIn          = "scaleIn"
	SlideInLeft      = "slideInLeft"
	SlideInRight     = "slideInRight"
	SlideInShort     = "slideInShort"
	RiseIn           = "riseIn"
	TagPop           = "tagPop"
	MobileMenu       = "mobileMenu"
	MenuItem         = "menuItem"
	NavBar           = "navBar"
	NavItem          = "navItem"
	SkillItem        = "skillItem"
	HeroTitle        = "heroTitle"
	HeroName         = "heroName"
	HeroLine         = "heroLine"
)

// Catalog is the full set of variant tables used by the page.
type Catalog map[string]Variants

// Get looks up a variant table.
func (c Catalog) Get(name string) (Variants, error) {
	v, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("motion: unknown variants %q", name)
	}
	return v, nil
}

// Validate checks that every table is either a hidden/visible reveal or a
// closed/open toggle, and that every spring comes to rest.
func (c Catalog) Validate() error {
	var errs []error
	for name, v := range c {
		states := v.States()
		if !slices.Equal(states, []string{Hidden, Visible}) && !slices.Equal(states, []string{Closed, Open}) {
			errs = append(errs, fmt.Errorf("motion: %q has states %v", name, states))
		}
		for _, state := range states {
			t := v[state].Transition
			if t != nil && t.Type == KindSpring && t.spring().DampingRatio() <= 0 {
				errs = append(errs, fmt.Errorf("motion: %q %s spring never settles", name, state))
			}
		}
	}
	return errors.Join(errs...)
}

func ptr(t Transition) *Transition { return &t }

// DefaultCatalog returns the page's transition tables. The returned value is
// fresh on every call and safe to modify.
func DefaultCatalog() Catalog {
	drawerSpring := SpringTransition(400, 40)

	return Catalog{
		FadeInUp: {
			Hidden:  {Props: Props{PropOpacity: 0, PropY: 60}},
			Visible: {Props: Props{PropOpacity: 1, PropY: 0}, Transition: ptr(Tween(0.6, EaseOut))},
		},
		FadeIn: {
			Hidden:  {Props: Props{PropOpacity: 0}},
			Visible: {Props: Props{PropOpacity: 1}},
		},
		FadeInSlow: {
			Hidden:  {Props: Props{PropOpacity: 0}},
			Visible: {Props: Props{PropOpacity: 1}, Transition: ptr(Tween(0.6, EaseOut))},
		},
		StaggerContainer: {
			Hidden: {Props: Props{PropOpacity: 0}},
			Visible: {Props: Props{PropOpacity: 1}, Transition: &Transition{
				Type:            KindTween,
				Duration:        DefaultDuration,
				Ease:            EaseOut,
				StaggerChildren: 0.1,
				DelayChildren:   0.2,
			}},
		},
		ScaleIn: {
			Hidden:  {Props: Props{PropScale: 0.8, PropOpacity: 0}},
			Visible: {Props: Props{PropScale: 1, PropOpacity: 1}, Transition: ptr(Tween(0.5, EaseOut))},
		},
		SlideInLeft: {
			Hidden:  {Props: Props{PropX: -60, PropOpacity: 0}},
			Visible: {Props: Props{PropX: 0, PropOpacity: 1}, Transition: ptr(Tween(0.6, EaseOut))},
		},
		SlideInRight: {
			Hidden:  {Props: Props{PropX: 60, PropOpacity: 0}},
			Visible: {Props: Props{PropX: 0, PropOpacity: 1}, Transition: ptr(Tween(0.6, EaseOut))},
		},
		SlideInShort: {
			Hidden:  {Props: Props{PropX: -20, PropOpacity: 0}},
			Visible: {Props: Props{PropX: 0, PropOpacity: 1}},
		},
		RiseIn: {
			Hidden:  {Props: Props{PropY: 10, PropOpacity: 0}},
			Visible: {Props: Props{PropY: 0, PropOpacity: 1}},
		},
		TagPop: {
			Hidden:  {Props: Props{PropScale: 0, PropOpacity: 0}},
			Visible: {Props: Props{PropScale: 1, PropOpacity: 1}},
		},
		MobileMenu: {
			Closed: {Props: Props{PropXPercent: 100}, Transition: ptr(drawerSpring)},
			Open:   {Props: Props{PropXPercent: 0}, Transition: ptr(drawerSpring)},
		},
		MenuItem: {
			Closed: {Props: Props{PropX: 50, PropOpacity: 0}},
			Open: {Props: Props{PropX: 0, PropOpacity: 1}, Transition: &Transition{
				Type:       KindTween,
				Duration:   DefaultDuration,
				Ease:       EaseOut,
				IndexDelay: 0.1,
			}},
		},
		NavBar: {
			Hidden:  {Props: Props{PropY: -100}},
			Visible: {Props: Props{PropY: 0}, Transition: ptr(Tween(0.5, EaseOut))},
		},
		NavItem: {
			Hidden: {Props: Props{PropOpacity: 0, PropY: -20}},
			Visible: {Props: Props{PropOpacity: 1, PropY: 0}, Transition: &Transition{
				Type:       KindTween,
				Duration:   DefaultDuration,
				Ease:       EaseOut,
				IndexDelay: 0.1,
			}},
		},
		SkillItem: {
			Hidden: {Props: Props{PropOpacity: 0, PropX: -10}},
			Visible: {Props: Props{PropOpacity: 1, PropX: 0}, Transition: &Transition{
				Type:       KindTween,
				Duration:   DefaultDuration,
				Ease:       EaseOut,
				IndexDelay: 0.1,
			}},
		},
		HeroTitle: {
			Hidden:  {Props: Props{PropOpacity: 0, PropY: 30}},
			Visible: {Props: Props{PropOpacity: 1, PropY: 0}, Transition: ptr(Tween(0.8, EaseOut))},
		},
		HeroName: {
			Hidden:  {Props: Props{PropOpacity: 0, PropX: -20}},
			Visible: {Props: Props{PropOpacity: 1, PropX: 0}, Transition: ptr(Tween(0.6, EaseOut).WithDelay(0.2))},
		},
		HeroLine: {
			Hidden:  {Props: Props{PropOpacity: 0, PropY: 20}},
			Visible: {Props: Props{PropOpacity: 1, PropY: 0}, Transition: ptr(Tween(0.6, EaseOut))},
		},
	}
}

// Ambient decorations behind the whole page and behind the hero.
var (
	BackdropPulses = []Pulse{
		{Scale: [2]float64{1, 1.2}, Opacity: [2]float64{0.3, 0.5}, Duration: 8, Ease: EaseInOut},
		{Scale: [2]float64{1, 1.3}, Opacity: [2]float64{0.2, 0.4}, Duration: 10, Delay: 1, Ease: EaseInOut},
		{Scale: [2]float64{1, 1.1}, Opacity: [2]float64{0.1, 0.3}, Duration: 6, Delay: 2, Ease: EaseInOut},
	}
	HeroPulses = []Pulse{
		{Scale: [2]float64{1, 1.2}, Opacity: [2]float64{0.2, 0.4}, Duration: 5, Ease: EaseInOut},
		{Scale: [2]float64{1, 1.3}, Opacity: [2]float64{0.1, 0.3}, Duration: 7, Delay: 1, Ease: EaseInOut},
	}
)

// Card hover affordances.
var (
	SkillHover      = Hover{Y: -5, Duration: 0.3}
	ExperienceHover = Hover{Scale: 1.02, Duration: 0.3}
	ProjectHover    = Hover{Y: -10, Duration: 0.3, OverlayScale: 0.8}
	ContactHover    = Hover{Y: -5, Duration: 0.3}
	PhotoHover      = Hover{Scale: 1.02, Duration: 0.3}
	LinkHover       = Hover{X: 5, Duration: 0.2}
	ButtonHover     = Hover{Scale: 1.05, Duration: 0.3}
)
