package attractor

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGrowth = errors.New("attractor: unknown growth mode")

// Growth selects how the point buffer behaves once it reaches MaxPoints.
type Growth int

const (
	// GrowthLiteral stops only the bloom batch at the cap; the base batch
	// keeps appending every frame.
	GrowthLiteral Growth = iota
	// GrowthHardStop appends nothing once the buffer holds MaxPoints.
	GrowthHardStop
)

func (g Growth) String() string {
	switch g {
	case GrowthLiteral:
		return "literal"
	case GrowthHardStop:
		return "hard_stop"
	}
	return fmt.Sprintf("growth(%d)", int(g))
}

// ParseGrowth accepts "literal" and "hard_stop" (also "hard-stop").
func ParseGrowth(s string) (Growth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return GrowthLiteral, nil
	case "hard_stop", "hard-stop", "hardstop":
		return GrowthHardStop, nil
	}
	return GrowthLiteral, fmt.Errorf("%w: %q", ErrUnknownGrowth, s)
}
