package lift

import (
	"context"

	"github.com/ib-77/lift/pkg/rop"
)

// Step lifts a typed fallible function into a Result stage for solo.Switch
// or chain.Then. A failure becomes rop.Fail(convert(err)).
func Step[I, O any, E1, E2 Error](f func(context.Context, I) (O, E1),
	convert Converter[E1, E2]) func(context.Context, I) rop.Result[O] {
	return func(ctx context.Context, in I) rop.Result[O] {
		out, err := f(ctx, in)
		var none E1
		if err != none {
			return rop.Fail[O](convert(err))
		}
		return rop.Success(out)
	}
}

// LiftResult converts the failure branch of a Result stage. Success and
// cancel results are returned as produced by f; a failure keeps its id and
// creation time.
func LiftResult[I, O any](f func(context.Context, I) rop.Result[O],
	convert Converter[error, error]) func(context.Context, I) rop.Result[O] {
	return func(ctx context.Context, in I) rop.Result[O] {
		res := f(ctx, in)
		if res.IsFailure() {
			return res.WithErr(convert(res.Err()))
		}
		return res
	}
}

// Unwrap turns a result back into the (T, error) pair. Non-successful
// results always return a non-nil error.
func Unwrap[T any](r rop.WithError[T]) (T, error) {
	if r.IsSuccess() {
		return r.Result(), nil
	}
	var zero T
	if err := r.Err(); err != nil {
		return zero, err
	}
	return zero, ErrNoResult
}
