package lift

// MapErr converts the error of an (O, E1) pair. A zero error stays zero and
// convert is not called.
func MapErr[O any, E1, E2 Error](out O, err E1, convert Converter[E1, E2]) (O, E2) {
	return out, convertErr(err, convert)
}

// AndThen applies f to in when err is zero. Otherwise f is not called and
// err is returned with the zero O.
func AndThen[I, O any, E Error](in I, err E, f func(I) (O, E)) (O, E) {
	var none E
	if err != none {
		var zero O
		return zero, err
	}
	return f(in)
}

// Compose chains two fallible functions sharing an error type. g runs only
// when f succeeds.
func Compose[T, U, V any, E Error](f func(T) (U, E), g func(U) (V, E)) func(T) (V, E) {
	return func(in T) (V, E) {
		u, err := f(in)
		return AndThen(u, err, g)
	}
}
