// SPDX-License-Identifier: MIT

package findiff

import "fmt"

// Wind selects the direction of a first-derivative stencil.
type Wind int

const (
	// Down uses the node and its lower neighbour.
	Down Wind = -1
	// Center blends both one-sided differences weighted by the opposite spacing.
	Center Wind = 0
	// Up uses the node and its upper neighbour.
	Up Wind = 1
	// Smart picks Down where the drift is negative and Up where it is positive.
	Smart Wind = 2
)

// String implements fmt.Stringer.
func (w Wind) String() string {
	switch w {
	case Down:
		return "down"
	case Center:
		return "center"
	case Up:
		return "up"
	case Smart:
		return "smart"
	default:
		return fmt.Sprintf("Wind(%d)", int(w))
	}
}

// ParseWind maps the names printed by String (and the integer codes -1..2)
// back to a Wind.
func ParseWind(s string) (Wind, error) {
	switch s {
	case "down", "-1":
		return Down, nil
	case "center", "0":
		return Center, nil
	case "up", "1":
		return Up, nil
	case "smart", "2":
		return Smart, nil
	}

	return 0, fmt.Errorf("findiff: ParseWind(%q): %w", s, ErrUnsupportedWind)
}
