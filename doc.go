/*
Package unchecked adapts error-returning functions to call sites that cannot
return an error.

# Overview

Plenty of Go APIs take a plain function: slices.SortFunc comparators,
strings.Map, sync.OnceValue, iterator loops, test fixtures. When the logic
you want to pass in can fail, the failure has nowhere to go. Unchecked turns
the returned error into a panic with a small, predictable shape, so the
failure still reaches the caller with its cause intact.

# Quick Example

Instead of swallowing the error inside a comparator:

	slices.SortFunc(paths, func(a, b string) int {
	    sa, _ := os.Stat(a) // error lost
	    sb, _ := os.Stat(b)
	    return cmp.Compare(sa.Size(), sb.Size())
	})

Wrap a comparator that reports it:

	bySize := unchecked.Wrap2(func(a, b string) (int, error) {
	    sa, err := os.Stat(a)
	    if err != nil {
	        return 0, err
	    }
	    sb, err := os.Stat(b)
	    if err != nil {
	        return 0, err
	    }
	    return cmp.Compare(sa.Size(), sb.Size()), nil
	})
	slices.SortFunc(paths, bySize)

# Failure Kinds

Every non-nil error is classified into exactly one Kind:

  - KindUnchecked: a panic raised by the function itself, or a returned error
    that is itself a runtime.Error, *UncheckedError or *UncheckedIOError. It
    propagates unchanged. An error that only wraps one of those is classified
    like any other error.
  - KindIO: the chain holds an input/output failure (*fs.PathError,
    *os.LinkError, *os.SyscallError, *net.OpError, io.EOF, fs.ErrNotExist, ...).
    It is re-raised as *UncheckedIOError.
  - KindGeneric: anything else. It is re-raised as *UncheckedError.

The original error is always kept as the carrier's Cause, so errors.Is and
errors.As still find it after the panic is recovered.

# Shapes

Six function shapes are supported, each with an invoke-now and a wrap form:

  - Function[T, R]: Invoke, Wrap
  - BiFunction[T1, T2, R]: Invoke2, Wrap2
  - Consumer[T]: InvokeConsumer, WrapConsumer
  - BiConsumer[T1, T2]: InvokeBiConsumer, WrapBiConsumer
  - Supplier[R]: InvokeSupplier, WrapSupplier
  - Call: InvokeCall, WrapCall

Wrapping never calls the function. Nothing is retried, logged or recovered;
the package holds no state and is safe for concurrent use.

# Package Import

	import "github.com/Pure-Company/unchecked"
*/
package unchecked
