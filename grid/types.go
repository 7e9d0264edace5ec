// Package grid defines core types, options, and sentinel errors
// for the occupancy-grid environment used by the search strategies.
package grid

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"
)

// Sentinel errors for grid construction and configuration.
var (
	// ErrBadSize indicates a non-positive grid size was requested.
	ErrBadSize = errors.New("grid: size must be a positive integer")

	// ErrBadDensity indicates a wall density outside [0,1].
	ErrBadDensity = errors.New("grid: density must be within [0,1]")

	// ErrBadProbability indicates an obstacle probability outside [0,1].
	ErrBadProbability = errors.New("grid: obstacle probability must be within [0,1]")

	// ErrBadObstacleCap indicates a negative dynamic-obstacle cap.
	ErrBadObstacleCap = errors.New("grid: dynamic obstacle cap must be non-negative")
)

// CellState encodes the occupancy of a single grid cell.
// The numeric values are part of the public contract: callers
// (renderers, persisted fixtures) key palettes and assertions on them.
type CellState int

const (
	// Wall marks a permanent, user-placed impassable cell.
	Wall CellState = -1
	// Empty marks a walkable, unoccupied cell.
	Empty CellState = 0
	// Start marks the unique search origin cell.
	Start CellState = 1
	// Target marks the unique search destination cell.
	Target CellState = 2
	// Frontier marks a discovered-but-unexpanded cell (visualization overlay).
	Frontier CellState = 3
	// Explored marks an expanded cell (visualization overlay).
	Explored CellState = 4
	// Path marks a cell on the most recent reconstructed path (visualization overlay).
	Path CellState = 5
	// DynamicObstacle marks a randomly spawned, removable impassable cell.
	DynamicObstacle CellState = 6
)

// Cell is an integer (row, column) coordinate into the grid.
// Cells compare and hash by value, so they serve as the universal key
// for visited sets, parent maps, and cost maps.
type Cell struct {
	Row, Col int
}

// NeighborFunc enumerates the walkable neighbors of a cell, in the fixed
// direction order of Directions. It must be pure with respect to the grid
// snapshot at call time.
type NeighborFunc func(Cell) []Cell

// Directions is the fixed six-offset adjacency table, in clockwise order:
// Up, Right, Down, Down-Right, Left, Up-Left.
// Up-Right and Down-Left are intentionally excluded: the grid is not fully
// 8-connected, and every traversal depends on this exact ordering.
var Directions = [6]Cell{
	{Row: -1, Col: 0},  // Up
	{Row: 0, Col: 1},   // Right
	{Row: 1, Col: 0},   // Down
	{Row: 1, Col: 1},   // Down-Right (diagonal)
	{Row: 0, Col: -1},  // Left
	{Row: -1, Col: -1}, // Up-Left (diagonal)
}

// DirectionNames labels Directions index-for-index, for diagnostics.
var DirectionNames = [6]string{"Up", "Right", "Down", "Down-Right", "Left", "Up-Left"}

// Default configuration values, mirrored across constructors.
const (
	// DefaultSize is the grid dimension used when no explicit size is chosen.
	DefaultSize = 30

	// DefaultObstacleProbability is the per-invocation chance that
	// SpawnDynamicObstacle places an obstacle.
	DefaultObstacleProbability = 0.03

	// DefaultMaxDynamicObstacles caps how many dynamic obstacles may
	// exist at once.
	DefaultMaxDynamicObstacles = 50
)

// Option configures optional Grid behavior via functional arguments.
// An invalid Option (probability out of range, negative cap) is recorded
// internally and surfaced as its sentinel error when New is invoked.
type Option func(*Options)

// Options holds tunable parameters for a Grid.
type Options struct {
	// ObstacleProbability is the per-call spawn chance in [0,1].
	ObstacleProbability float64

	// MaxDynamicObstacles bounds the dynamic-obstacle set size.
	MaxDynamicObstacles int

	// Rand supplies randomness for obstacle spawning and wall
	// randomization; inject a seeded source for deterministic tests.
	Rand *rand.Rand

	// Logger receives diagnostics for refused mutations and bad
	// configuration. Defaults to a no-op logger.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the original defaults:
// 3% spawn probability, cap of 50 obstacles, no-op logger,
// and a lazily time-seeded random source.
func DefaultOptions() Options {
	return Options{
		ObstacleProbability: DefaultObstacleProbability,
		MaxDynamicObstacles: DefaultMaxDynamicObstacles,
		Rand:                nil,
		Logger:              zap.NewNop(),
		err:                 nil,
	}
}

// WithObstacleProbability sets the per-invocation spawn chance.
// Values outside [0,1] are invalid and surface ErrBadProbability from New.
func WithObstacleProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = ErrBadProbability
			return
		}
		o.ObstacleProbability = p
	}
}

// WithMaxDynamicObstacles caps the number of live dynamic obstacles.
// Negative caps are invalid and surface ErrBadObstacleCap from New.
func WithMaxDynamicObstacles(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrBadObstacleCap
			return
		}
		o.MaxDynamicObstacles = n
	}
}

// WithSeed installs a deterministic random source seeded with seed.
// Same seed, same mutation sequence ⇒ identical spawn behavior.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a custom random source. Passing nil has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithLogger injects a telemetry sink. Passing nil has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
