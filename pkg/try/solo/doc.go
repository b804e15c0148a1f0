// Package solo contains typed, single-value helpers over try.Try. The core
// type carries untyped payloads; these functions restore static types at the
// edges of a pipeline.
//
// Highlights:
// - Value/ValueOr: extract a typed value
// - Map/TryMap/FlatMap: transform a typed value, possibly changing its type
// - Validate/ValidateAll: turn invalid values into failures
// - Tee/DoubleTee: typed side effects that keep the outcome
// - DoubleMap: map the value and the error in one step
// - Collect: zip several outcomes into a typed slice
// - Finally: reduce to a concrete value via success/failure handlers
//
// A payload of an unexpected type is a programming mistake and panics with
// *try.TypeError, which the core never captures.
package solo
