// Package result provides Result[T] and Option[T]: sum types for
// success-or-error and present-or-absent values, manipulated through
// combinators (Map, AndThen, Match, ValueOr) instead of unwinding
// control flow.
//
// Combinators on an Err or None never invoke their argument, so
// chains short-circuit at the first failure:
//
//	q := result.AndThen(safeDivide(a, b), safeSqrt).Map(double)
//
// Type-changing steps use the package-level Map/AndThen/MapOpt, since
// Go methods cannot introduce new type parameters.
package result
