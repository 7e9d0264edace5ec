// Package grid provides the occupancy-grid environment for the pathgrid
// search strategies: a square matrix of cell states with start/target
// markers, static walls, capped dynamic obstacles, and bounds-checked
// neighbor enumeration.
//
// What
//
//   - Cell: integer (row, col) coordinate; compares by value, keys every map.
//   - CellState: Empty, Wall, Start, Target, Frontier, Explored, Path,
//     DynamicObstacle — the overlay states exist only for visualization and
//     are cleared before each new search.
//   - Grid: fixed-size square matrix. At most one Start and one Target
//     marker exist at any time, never equal, never on an impassable cell.
//   - Neighbors: the subset of the fixed six-direction offset table —
//     Up, Right, Down, Down-Right, Left, Up-Left, in that exact clockwise
//     order — filtered to walkable cells.
//
// Adjacency
//
//	Up-Right and Down-Left are intentionally excluded: the grid is
//	6-connected, not 8-connected. This asymmetry is a design constant the
//	search strategies must not second-guess, and the enumeration order is
//	load-bearing — it fixes the traversal order every strategy, test, and
//	visualization replays.
//
// Mutation contract
//
//	Every mutation (SetStart, SetTarget, AddWall, RemoveWall,
//	SpawnDynamicObstacle, marking operations) validates its input and
//	reports refusal as a boolean success flag; invalid positions never
//	panic and never raise. Constructor-level configuration errors
//	(non-positive size, out-of-range density or probability) are returned
//	as sentinel errors and logged through the injected zap logger.
//
// Determinism
//
//	Randomness (obstacle spawning, RandomizeWalls) flows through an
//	injected *rand.Rand — use WithSeed or WithRand so tests replay the
//	same mutation sequence; the default source is time-seeded.
//
// Complexity
//
//   - Neighbors, IsWalkable, marker/wall edits: O(1).
//   - SpawnDynamicObstacle, ClearWalls, ClearSearchVisualization,
//     RandomizeWalls: O(size²).
//
// Errors
//
//   - ErrBadSize         if New is given a non-positive size.
//   - ErrBadDensity      if RandomizeWalls is given density outside [0,1].
//   - ErrBadProbability  if WithObstacleProbability is outside [0,1].
//   - ErrBadObstacleCap  if WithMaxDynamicObstacles is negative.
package grid
