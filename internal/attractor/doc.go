// Package attractor owns the trajectory of Thomas' cyclically symmetric
// attractor as it is grown frame by frame for display.
//
// A [Simulator] holds the dissipation parameter, the ordered point buffer and
// the viewpoint rotation angle. Hosts call [Simulator.Advance] once per frame
// to append newly integrated points, [Simulator.Rotate] to turn the viewpoint,
// and read the buffer with [Simulator.Points].
//
// # Growth
//
// Each frame appends a base batch unconditionally, plus a bloom batch while
// the buffer is below MaxPoints. Under [GrowthLiteral] the base batch keeps
// running past the cap, so the buffer grows forever at the reduced rate.
// [GrowthHardStop] stops all growth at MaxPoints.
//
// A Simulator is not safe for concurrent use; it belongs to the frame loop.
package attractor
