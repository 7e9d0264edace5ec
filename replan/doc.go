// Package replan keeps a computed route valid while obstacles appear
// during execution.
//
// What
//
//   - Coordinator: owns the replan and blocked-path counters and drives
//     the VALID → INVALIDATED decision over a search.Result.
//   - ReplanNeeded(result, agentPos): false for results without a found
//     path; true when the agent is not on the path, when any remaining
//     path cell is no longer walkable, or when the single next cell is
//     blocked (an intentionally explicit secondary check).
//   - TriggerReplan(agentPos, strategy, neighbors): clears visualization
//     overlays, re-runs the strategy from the agent's position toward the
//     grid's current target, and increments the replan counter
//     unconditionally.
//   - CheckPathBlocked(path, fromIndex): remaining-path scan; each
//     detection increments the blocked-path counter independently of
//     whether a replan follows.
//
// Lifecycle
//
//	Counters are monotonic and reset only by Reset. The coordinator is
//	invoked from the same control loop as obstacle spawning and search
//	stepping, strictly interleaved, never concurrently.
//
// Example tick:
//
//	coord.SpawnDynamicObstacle()
//	if coord.ReplanNeeded(result, agent) {
//	    result = coord.TriggerReplan(agent, strategy, g.Neighbors)
//	}
package replan
