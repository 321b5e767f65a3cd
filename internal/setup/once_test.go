package setup

import (
	"context"
	"testing"

	"github.com/bornholm/brief/internal/config"
	"github.com/pkg/errors"
)

func TestCreateFromConfigOnce(t *testing.T) {
	calls := 0

	errTransient := errors.New("transient")

	get := createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*int, error) {
		calls++
		if calls == 1 {
			return nil, errTransient
		}

		value := calls
		return &value, nil
	})

	ctx := context.Background()
	conf := &config.Config{}

	if _, err := get(ctx, conf); !errors.Is(err, errTransient) {
		t.Fatalf("expected error '%v', got '%v'", errTransient, err)
	}

	first, err := get(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := get(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if first != second {
		t.Errorf("expected memoized value")
	}

	if e, g := 2, calls; e != g {
		t.Errorf("expected %d calls, got %d", e, g)
	}
}
