// Package worker runs CPU-bound jobs on a bounded set of goroutines.
//
// Prime search and certificate signing can take noticeable wall time, so every
// service call is handed to a Pool instead of running on the caller's
// goroutine. A job that has started is never interrupted: when the caller's
// context ends first, Submit returns ctx.Err() and the job's eventual result is
// dropped.
package worker
