package lift

import "context"

// Error is satisfied by every comparable error type, including the error
// interface itself. The zero value of the type means "no error".
type Error interface {
	comparable
	error
}

// Converter is a total conversion from E1 to E2. It must return a meaningful
// E2 for every non-zero E1 and must not fail itself.
type Converter[E1, E2 any] func(E1) E2

// Lift returns a function that calls f and converts its error with convert.
// The output of f is returned unchanged on both branches.
func Lift[I, O any, E1, E2 Error](f func(I) (O, E1), convert Converter[E1, E2]) func(I) (O, E2) {
	return func(in I) (O, E2) {
		out, err := f(in)
		return out, convertErr(err, convert)
	}
}

// LiftContext is Lift for functions taking a context, the shape accepted by
// solo.Try and chain.ThenTry. ctx is passed to f untouched.
func LiftContext[I, O any, E1, E2 Error](f func(context.Context, I) (O, E1),
	convert Converter[E1, E2]) func(context.Context, I) (O, E2) {
	return func(ctx context.Context, in I) (O, E2) {
		out, err := f(ctx, in)
		return out, convertErr(err, convert)
	}
}

func convertErr[E1, E2 Error](err E1, convert Converter[E1, E2]) E2 {
	var none E1
	if err == none {
		var ok E2
		return ok
	}
	return convert(err)
}

// Identity is the identity conversion. Lift(f, Identity[E]) behaves as f.
func Identity[E Error](err E) E {
	return err
}

// ToError widens a typed error to the error interface. The zero value of E
// becomes a nil error, so a nil *T never turns into a non-nil error.
func ToError[E Error](err E) error {
	var none E
	if err == none {
		return nil
	}
	return err
}

// Then composes two conversions into E1 -> E3.
func Then[E1, E2, E3 any](first Converter[E1, E2], second Converter[E2, E3]) Converter[E1, E3] {
	return func(err E1) E3 {
		return second(first(err))
	}
}
