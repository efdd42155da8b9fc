package booking

import (
	"context"
	"errors"
)

// withTimeout runs fn under a deadline of e.timeout. fn receives the derived
// context, so a remote call that honours it is cancelled when the deadline
// passes instead of being left to finish unobserved.
func (e *Engine) withTimeout(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn(ctx) }()

	select {
	case err := <-done:
		return timeoutOr(ctx, op, err)
	case <-ctx.Done():
		// fn may have finished in the same instant.
		select {
		case err := <-done:
			return timeoutOr(ctx, op, err)
		default:
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &TimeoutError{Op: op}
		}
		return ctx.Err()
	}
}

func timeoutOr(ctx context.Context, op string, err error) error {
	if err != nil && errors.Is(err, context.DeadlineExceeded) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Op: op}
	}
	return err
}
