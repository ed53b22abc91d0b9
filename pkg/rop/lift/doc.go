// Package lift adapts a fallible function that fails with error type E1 into
// one that fails with error type E2, given a total conversion E1 -> E2.
//
// Turning a failed value into a domain error is a one-liner:
//
//	out := solo.MapError(ctx, in, toDomain)
//
// Applying a fallible step whose error type differs from the pipeline's used
// to need an inline closure at every stage:
//
//	chain.Then(c, func(ctx context.Context, s string) rop.Result[int] {
//		n, err := parse(ctx, s)
//		if err != nil {
//			return rop.Fail[int](toDomain(err))
//		}
//		return rop.Success(n)
//	})
//
// With lift the stage is written point-free:
//
//	chain.Then(c, lift.Step(parse, toDomain))
//
// The same adapter works on plain Go signatures:
//
//	atoi := lift.Lift(strconv.Atoi, toDomain) // func(string) (int, *DomainError)
//
// A lifted function calls the wrapped one exactly once per call and calls the
// converter only on the failure branch. It adds no state, no retries and no
// recovery: panics raised by the wrapped function or the converter reach the
// caller unchanged. A lifted function is as safe for concurrent use as the
// function and converter it wraps.
package lift
