package chain

import (
	"context"

	"github.com/ib-77/lift/pkg/rop"
	"github.com/ib-77/lift/pkg/rop/lift"
	"github.com/ib-77/lift/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// ThenLift chains a function failing with its own error type; the error is
// converted with convert before it enters the chain.
func ThenLift[T, U any, E1, E2 lift.Error](c *Chain[T], onSuccess func(context.Context, T) (U, E1),
	convert lift.Converter[E1, E2]) *Chain[U] {
	return Then(c, lift.Step(onSuccess, convert))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// MapError converts the error of a failed chain
func (c *Chain[T]) MapError(onFailure func(context.Context, error) error) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.MapError(c.ctx, c.result, onFailure),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result rop.Result[T]) {
				onSuccess(ctx, result.Result())
			}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
