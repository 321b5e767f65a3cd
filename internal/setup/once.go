package setup

import (
	"context"
	"sync"

	"github.com/bornholm/brief/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes the first successful result of the given
// factory. Failed attempts are not cached.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		mutex   sync.Mutex
		value   T
		created bool
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if created {
			return value, nil
		}

		v, err := factory(ctx, conf)
		if err != nil {
			var zero T
			return zero, errors.WithStack(err)
		}

		value = v
		created = true

		return value, nil
	}
}
