// Package runlog records the history of a search run: one RoundSummary per
// round (round 0 is initialization) and one BestEvent each time a particle
// improves its own best.
//
// Two recorders are provided. Memory keeps everything in slices and is what
// tests and short runs use. SQLite persists the history through the pure-Go
// modernc.org/sqlite driver, storing winning trees as JSON snapshots so a
// run can be inspected after the process exits. PlotRounds charts the best
// and mean log-likelihood of each round with gonum/plot.
package runlog
