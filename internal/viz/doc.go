// Package viz draws the Thomas attractor and hosts it in the terminal.
//
// The projection helpers ([Project], [Segments], [ForEachSegment]) are pure
// and shared with the window host. The terminal host is a Bubble Tea
// program built around a Braille [Canvas]:
//
//	←/→ h/l  - Nudge b by 0.001
//	H/L      - Nudge b by 0.01
//	R        - Reset the trajectory to the seed
//	Space    - Pause/Resume
//	P        - Cycle dissipation presets
//	T        - Cycle color themes
//	Q        - Quit
package viz
