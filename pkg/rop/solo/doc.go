// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out] (and_then)
// - Map: transform successful values
// - MapError: convert the error of a failed value (map_err)
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side-effect helper
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
