package unchecked

// ============================================================================
// Callable Shapes
// ============================================================================

// Function is a one-argument function that produces a value or fails.
//
// Example:
//
//	read := Function[string, []byte](os.ReadFile)
//	data := read.Invoke("config.json") // panics with *UncheckedIOError on failure
type Function[T, R any] func(t T) (R, error)

// Invoke calls f with t, see the package-level Invoke.
func (f Function[T, R]) Invoke(t T) R {
	return Invoke[T, R](f, t)
}

// Unchecked returns f without the error result, see Wrap.
func (f Function[T, R]) Unchecked() func(T) R {
	return Wrap[T, R](f)
}

// BiFunction is a two-argument function that produces a value or fails.
type BiFunction[T1, T2, R any] func(t1 T1, t2 T2) (R, error)

// Invoke calls f with t1 and t2, see Invoke2.
func (f BiFunction[T1, T2, R]) Invoke(t1 T1, t2 T2) R {
	return Invoke2[T1, T2, R](f, t1, t2)
}

// Unchecked returns f without the error result, see Wrap2.
func (f BiFunction[T1, T2, R]) Unchecked() func(T1, T2) R {
	return Wrap2[T1, T2, R](f)
}

// Consumer is a one-argument side effect that may fail.
type Consumer[T any] func(t T) error

// Invoke calls f with t, see InvokeConsumer.
func (f Consumer[T]) Invoke(t T) {
	InvokeConsumer[T](f, t)
}

// Unchecked returns f without the error result, see WrapConsumer.
func (f Consumer[T]) Unchecked() func(T) {
	return WrapConsumer[T](f)
}

// BiConsumer is a two-argument side effect that may fail.
type BiConsumer[T1, T2 any] func(t1 T1, t2 T2) error

// Invoke calls f with t1 and t2, see InvokeBiConsumer.
func (f BiConsumer[T1, T2]) Invoke(t1 T1, t2 T2) {
	InvokeBiConsumer[T1, T2](f, t1, t2)
}

// Unchecked returns f without the error result, see WrapBiConsumer.
func (f BiConsumer[T1, T2]) Unchecked() func(T1, T2) {
	return WrapBiConsumer[T1, T2](f)
}

// Supplier produces a value without input, or fails.
type Supplier[R any] func() (R, error)

// Invoke calls f, see InvokeSupplier.
func (f Supplier[R]) Invoke() R {
	return InvokeSupplier[R](f)
}

// Unchecked returns f without the error result, see WrapSupplier.
func (f Supplier[R]) Unchecked() func() R {
	return WrapSupplier[R](f)
}

// Call is a side effect without input that may fail.
type Call func() error

// Invoke calls f, see InvokeCall.
func (f Call) Invoke() {
	InvokeCall(f)
}

// Unchecked returns f without the error result, see WrapCall.
func (f Call) Unchecked() func() {
	return WrapCall(f)
}

// ============================================================================
// Invoke
// ============================================================================

// call runs fn on the calling goroutine. A returned error is normalized and
// raised as a panic; a panic raised by fn is never recovered.
func call[R any](fn func() (R, error)) R {
	r, err := fn()
	if err != nil {
		panic(Normalize(err))
	}
	return r
}

// Invoke calls fn with t and returns its result. If fn returns an error,
// Invoke panics with the normalized error (see Normalize).
//
// Example:
//
//	data := unchecked.Invoke(os.ReadFile, "config.json")
func Invoke[T, R any](fn func(T) (R, error), t T) R {
	return call(func() (R, error) { return fn(t) })
}

// Invoke2 calls fn with t1 and t2 and returns its result. If fn returns an
// error, Invoke2 panics with the normalized error.
func Invoke2[T1, T2, R any](fn func(T1, T2) (R, error), t1 T1, t2 T2) R {
	return call(func() (R, error) { return fn(t1, t2) })
}

// InvokeConsumer calls fn with t. If fn returns an error, InvokeConsumer
// panics with the normalized error.
func InvokeConsumer[T any](fn func(T) error, t T) {
	call(func() (struct{}, error) { return struct{}{}, fn(t) })
}

// InvokeBiConsumer calls fn with t1 and t2. If fn returns an error,
// InvokeBiConsumer panics with the normalized error.
func InvokeBiConsumer[T1, T2 any](fn func(T1, T2) error, t1 T1, t2 T2) {
	call(func() (struct{}, error) { return struct{}{}, fn(t1, t2) })
}

// InvokeSupplier calls fn and returns its result. If fn returns an error,
// InvokeSupplier panics with the normalized error.
func InvokeSupplier[R any](fn func() (R, error)) R {
	return call(fn)
}

// InvokeCall calls fn. If fn returns an error, InvokeCall panics with the
// normalized error.
func InvokeCall(fn func() error) {
	call(func() (struct{}, error) { return struct{}{}, fn() })
}

// ============================================================================
// Wrap
// ============================================================================

// Wrap returns a function that calls Invoke(fn, t) each time it is called.
// fn is not called by Wrap itself.
//
// Example:
//
//	size := unchecked.Wrap(fileSize)
//	for _, p := range paths {
//	    total += size(p)
//	}
func Wrap[T, R any](fn func(T) (R, error)) func(T) R {
	return func(t T) R {
		return Invoke(fn, t)
	}
}

// Wrap2 returns a function that calls Invoke2(fn, t1, t2) each time it is called.
func Wrap2[T1, T2, R any](fn func(T1, T2) (R, error)) func(T1, T2) R {
	return func(t1 T1, t2 T2) R {
		return Invoke2(fn, t1, t2)
	}
}

// WrapConsumer returns a function that calls InvokeConsumer(fn, t).
func WrapConsumer[T any](fn func(T) error) func(T) {
	return func(t T) {
		InvokeConsumer(fn, t)
	}
}

// WrapBiConsumer returns a function that calls InvokeBiConsumer(fn, t1, t2).
func WrapBiConsumer[T1, T2 any](fn func(T1, T2) error) func(T1, T2) {
	return func(t1 T1, t2 T2) {
		InvokeBiConsumer(fn, t1, t2)
	}
}

// WrapSupplier returns a function that calls InvokeSupplier(fn).
func WrapSupplier[R any](fn func() (R, error)) func() R {
	return func() R {
		return InvokeSupplier(fn)
	}
}

// WrapCall returns a function that calls InvokeCall(fn).
func WrapCall(fn func() error) func() {
	return func() {
		InvokeCall(fn)
	}
}
