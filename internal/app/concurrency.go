package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel2 runs two reads concurrently, such as a car's policies and its
// claims, and returns both results or the first error. The context given to
// each function is canceled as soon as the other fails.
//
// A panic in either function is returned as an error; it would otherwise
// escape the caller's recovery, which only covers its own goroutine.
func Parallel2[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (T1, T2, error) {
	var (
		r1 T1
		r2 T2
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		defer recoverInto(&err)
		r1, err = fn1(gctx)
		return err
	})

	g.Go(func() (err error) {
		defer recoverInto(&err)
		r2, err = fn2(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
		)

		return zero1, zero2, err
	}

	return r1, r2, nil
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("panic in concurrent read: %v", r)
	}
}
