// Package search defines the shared strategy contract, result snapshot,
// and status taxonomy for all pathgrid traversal strategies.
package search

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors for strategy configuration.
var (
	// ErrBadDepthLimit indicates a negative depth limit was supplied.
	ErrBadDepthLimit = errors.New("search: depth limit must be non-negative")

	// ErrBadMaxDepth indicates a negative iterative-deepening ceiling.
	ErrBadMaxDepth = errors.New("search: max depth must be non-negative")
)

// Step costs over the six-direction adjacency. Both diagonal offsets in
// the direction table cost √2; every orthogonal move costs 1.
const (
	// CostOrthogonal is the cost of an Up/Right/Down/Left move.
	CostOrthogonal = 1.0
)

// CostDiagonal is the cost of a Down-Right or Up-Left move.
var CostDiagonal = math.Sqrt2

// Default bounds for the depth-limited strategies.
const (
	// DefaultDepthLimit bounds a single depth-limited sweep.
	DefaultDepthLimit = 20

	// DefaultMaxDepth bounds the deepest iterative-deepening sweep.
	DefaultMaxDepth = 100
)

// Status is the terminal (or transient) state of a search invocation.
type Status int

const (
	// StatusIdle means no search has run yet.
	StatusIdle Status = iota
	// StatusRunning means a search is in progress.
	StatusRunning
	// StatusFound means a path to the target was reconstructed.
	StatusFound
	// StatusNotFound means the frontier emptied before reaching the target.
	StatusNotFound
	// StatusBlocked means a previously found path was invalidated.
	StatusBlocked
)

// statusNames maps Status values to their wire-stable labels.
var statusNames = [...]string{"idle", "running", "found", "not_found", "blocked"}

// String returns the label for s, or "unknown" for out-of-range values.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}

	return statusNames[s]
}

// Result is the immutable snapshot produced once per search invocation.
// It is owned solely by the caller; strategies retain no reference to it.
type Result struct {
	// Path is the ordered cell sequence from start to target,
	// nil when no path was found.
	Path []grid.Cell

	// Visited records cells in expansion order.
	Visited []grid.Cell

	// Frontiers holds one frontier snapshot per expansion step, for
	// progressive visualization. Content is cosmetic, not semantic.
	Frontiers [][]grid.Cell

	// Steps counts expansions; for iterative deepening it spans all sweeps.
	Steps int

	// Status is the terminal status of the invocation.
	Status Status

	// Message is a human-readable summary of the outcome.
	Message string
}

// Strategy is the single capability every traversal implements.
// Search never returns a Go error: an unreachable target is ordinary
// data (StatusNotFound), and dead-end cells (empty neighbor lists) are
// handled without raising. Each call fully resets per-instance state, so
// no state survives across searches on the same instance.
type Strategy interface {
	// Name returns the strategy's short identifier (e.g. "BFS").
	Name() string

	// Search walks from start toward target, pulling adjacency from
	// neighbors, and returns the result snapshot.
	Search(start, target grid.Cell, neighbors grid.NeighborFunc) *Result
}

// newRunning returns a Result primed for an in-progress search.
func newRunning() *Result {
	return &Result{Status: StatusRunning}
}

// snapshot copies cells so later frontier mutation cannot alias into a
// recorded history entry.
func snapshot(cells []grid.Cell) []grid.Cell {
	out := make([]grid.Cell, len(cells))
	copy(out, cells)

	return out
}

// foundAtStart is the shared start==target fast path: one-element path,
// one visited cell, one empty frontier snapshot, one step.
func foundAtStart(start grid.Cell) *Result {
	return &Result{
		Path:      []grid.Cell{start},
		Visited:   []grid.Cell{start},
		Frontiers: [][]grid.Cell{{}},
		Steps:     1,
		Status:    StatusFound,
		Message:   "Start is target!",
	}
}
