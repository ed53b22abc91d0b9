package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result carries either a success value or an error. A cancelled result is a
// failure whose error came from the surrounding context.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
	hasResult bool
}

var _ WithCancel[struct{}] = Result[struct{}]{}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// CancelFrom moves a non-successful result to another value type, keeping
// its id, creation time and error.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		hasResult: false,
		id:        from.id,
	}
}

// WithErr returns a copy of r whose error is replaced by err.
// Id, creation time and flags are kept.
func (r Result[T]) WithErr(err error) Result[T] {
	r.err = err
	return r
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports a plain failure; cancellations are not failures.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isCancel
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
