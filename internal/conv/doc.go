// Package conv provides checked conversions between integer types.
//
// To performs the bounds checking that a plain Go conversion skips:
// values that would wrap, truncate or flip sign report an error instead
// of silently corrupting. It backs the package-level Convert function.
//
// For conversions that are provably safe by domain constraints (e.g.
// loop indices, bounded counters), use direct type casts instead to
// avoid the overhead.
package conv
