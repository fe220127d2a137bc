package drive

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/hearthkeep/hearthkeep/internal/model"
)

// withRetry runs fn, retrying only model.ErrTransient failures with
// bounded exponential backoff. Permission and not-found errors surface on
// the first attempt; retrying them would just hammer the API.
func (s *Store) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	attempt := func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
		err := fn(callCtx)
		if err == nil {
			return nil
		}
		if model.IsTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 250 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	return backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(bo, s.maxRetries), ctx))
}
