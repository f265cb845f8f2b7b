// Package parallel provides the worker pool used to run blur passes over
// horizontal bands of an image.
//
// Each output row of a separable pass depends only on the pass input, never
// on other output rows, so a pass is split into contiguous row bands
// ([SplitRows]) and the bands are executed concurrently ([WorkerPool.ExecuteAll]).
// Bands never overlap, which keeps writes to the destination race-free
// without locking.
package parallel
