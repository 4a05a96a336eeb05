// Package pairwise runs DTW across many series at once.
//
// Compute fills the symmetric N×N distance matrix of a batch; Nearest finds
// the candidate closest to a query. Both fan the pairs out over a bounded
// worker pool and stop early when the context is cancelled.
//
// Distances can be memoized through a Cache. Keys come from Key, an xxhash
// fingerprint of the two series and the band/penalty options, so the same
// pair is found again whatever order the series are given in. Two caches
// ship with the package:
//
//	NewMemoryCache()               — in-process map, safe for concurrent use
//	NewRedisCache(client, p, ttl)  — shared across processes via Redis
//
// A cache failure never fails a job: the distance is recomputed and the error
// is logged at warn level.
//
// Pairs whose end cell is unreachable under the band are recorded as +Inf.
package pairwise
