package solo

import (
	"context"
	"errors"

	"github.com/ib-77/lift/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Result()); !isValid {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.CancelFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.CancelFrom[In, Out](input)
}

// MapError converts the error of a failed input. Successful and cancelled
// inputs are returned unchanged.
func MapError[T any](ctx context.Context,
	input rop.Result[T],
	onFailure func(ctx context.Context, err error) error) rop.Result[T] {

	if input.IsFailure() {
		return input.WithErr(onFailure(ctx, input.Err()))
	}
	return input
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

// Try runs onTryExecute on a successful input. A returned context error
// yields a cancelled result, any other error a failed one.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.CancelFrom[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.Result())
	if err != nil {
		if rop.IsCancellationError(err) {
			return rop.Cancel[Out](err)
		}
		return rop.Fail[Out](err)
	}

	return rop.Success(out)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {
	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Result()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}
