// Package memo caches the results of pure functions.
//
// Memoize wraps a plain function; Recursive wraps a function that calls
// itself through the supplied self reference so every recursive call hits
// the same cache. Tables grow without bound and are not safe for
// concurrent use: each wrapper owns its table.
package memo
