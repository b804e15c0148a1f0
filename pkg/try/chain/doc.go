// Package chain provides a fluent, typed wrapper around try.Try for
// synchronous pipelines built from the solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Try or a value
// - Then/ThenTry/Map: compose steps, as methods (same type) or functions (T -> U)
// - Tee/DoubleTee: run side effects without changing the outcome
// - DoubleMap: map the value and the error in one step
// - Or/And: pick the first success, or require every chain to succeed
// - Finally: collapse the chain into a final value via handlers
//
// Chains are values; every step returns a new Chain and leaves the receiver
// untouched. Payloads of the wrong type panic with *try.TypeError.
package chain
