// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - ThenLift: call a function (U, E1) and convert E1 with a lift.Converter
// - Map: transform the successful value (T -> U)
// - MapError: convert the error of a failed chain
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
