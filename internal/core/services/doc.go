// Package services implements the driving port interfaces.
// Services contain the core scouting logic and orchestrate
// calls to driven ports (sources, normalisers, generators).
//
// The aggregation Engine fans out to the graph and text-side sources,
// merges their batches under a dedup identity and ranks the result.
// Session wraps one engine run at a time for the presentation layer.
//
// Services are pure Go with no CGO or external dependencies.
package services
