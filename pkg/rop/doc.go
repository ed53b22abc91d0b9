// Package rop defines Result[T], the value passed between railway-oriented
// pipeline stages, and the small interfaces other packages accept.
//
// A Result is exactly one of: success (carries a value), failure (carries an
// error) or cancel (carries the context error that stopped the pipeline).
// Every Result is stamped with a uuid and a UTC creation time.
package rop
