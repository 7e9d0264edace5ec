// Package pathgrid is a deterministic toolkit for pathfinding on 2-D
// occupancy grids: a mutable grid environment, six interchangeable
// search strategies, and a replanning coordinator for grids that change
// underneath a moving agent.
//
// 🚀 What is pathgrid?
//
//	A small, focused library that brings together:
//		• Grid environment: walls, start/target markers, dynamic obstacles,
//		  and a fixed six-direction adjacency (diagonals only Down-Right
//		  and Up-Left)
//		• Uninformed search: BFS, DFS, UCS, DLS, IDDFS, Bidirectional —
//		  all behind one Strategy contract
//		• Replanning: detect a blocked path mid-walk and re-plan from the
//		  agent's current cell
//
// ✨ Why choose pathgrid?
//
//   - Deterministic – identical inputs replay identical visit sequences,
//     frontier snapshots included
//   - Inspectable – every search returns its full visit order and
//     per-step frontiers, ready for visualization
//   - Swappable – strategies share one signature; compare BFS against
//     UCS on the same grid with one line changed
//
// Everything is organized under three subpackages:
//
//	grid/   — cell states, markers, walls, obstacles, neighbor enumeration
//	search/ — the Strategy contract and its six implementations
//	replan/ — blocked-path detection and re-planning coordination
//
// Quick ASCII example:
//
//	S . . #
//	. \ . #
//	# . \ .
//	. . . T
//
//	an agent at S reaches T through the Down-Right diagonal, around
//	the walls (#).
//
// Dive into the per-package docs for the complete contracts.
//
//	go get github.com/katalvlaran/pathgrid
package pathgrid
