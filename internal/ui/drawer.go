package ui

import "encoding/json"

// DrawerState is the state of the mobile navigation drawer.
type DrawerState int

const (
	DrawerClosed DrawerState = iota
	DrawerOpen
)

func (s DrawerState) String() string {
	if s == DrawerOpen {
		return "open"
	}
	return "closed"
}

// Drawer is the off-canvas mobile menu. The zero value is closed.
type Drawer struct {
	state DrawerState
}

// Toggle flips the drawer, as the menu button does.
func (d *Drawer) Toggle() DrawerState {
	if d.state == DrawerOpen {
		d.state = DrawerClosed
	} else {
		d.state = DrawerOpen
	}
	return d.state
}

// SelectLink closes the drawer after a navigation link is chosen.
func (d *Drawer) SelectLink() DrawerState {
	d.state = DrawerClosed
	return d.state
}

// State returns the current state.
func (d Drawer) State() DrawerState {
	return d.state
}

// IsOpen reports whether the drawer is open.
func (d Drawer) IsOpen() bool {
	return d.state == DrawerOpen
}

func (d Drawer) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.state.String())
}

// NavMode says which navigation is interactive at a given width.
type NavMode int

const (
	// NavResponsive means the width is unknown and CSS decides.
	NavResponsive NavMode = iota
	NavDesktop
	NavMobile
)

func (m NavMode) String() string {
	switch m {
	case NavDesktop:
		return "desktop"
	case NavMobile:
		return "mobile"
	default:
		return "responsive"
	}
}

// NavModeFor picks the navigation for a viewport width. Desktop nav and
// drawer are never both interactive.
func NavModeFor(width float64) NavMode {
	switch {
	case width <= 0:
		return NavResponsive
	case width < MobileBreakpoint:
		return NavMobile
	default:
		return NavDesktop
	}
}
