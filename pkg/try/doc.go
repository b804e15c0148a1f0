// Package try provides Try, a value holding either the outcome of a fallible
// computation (Success) or the error that stopped it (Failure), together with
// combinators for chaining fallible steps without checking errors at every
// call site.
//
// Highlights:
// - Wrap/WrapErr/Of: run a computation and capture its outcome
// - Succeed/Fail: construct a known outcome
// - Map/TryMap/FlatMap/Flatten: transform successful values
// - Select/Reject/Grep: filter successful values
// - Recover/RecoverWith/OrElse/GetOrElse: resolve failures
// - Zip/ZipAll: combine several outcomes
// - Equal/Matches: structural and pattern equality, usable in switches
//
// Recoverable panics and returned errors become Failures. Fatal errors (see
// IsFatal) and misuse of the API itself (*TypeError, *ArgumentError) are never
// captured: they propagate as panics.
//
// Everything here is synchronous. Values are immutable and may be shared by
// concurrent readers as long as the payload itself is safe to share.
package try
