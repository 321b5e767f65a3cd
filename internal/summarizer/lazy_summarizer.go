package summarizer

import (
	"context"
	"sync"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/pkg/errors"
)

type FactoryFunc func(ctx context.Context) (port.Summarizer, error)

// LazySummarizer builds its underlying summarizer on first use.
//
// Concurrent first calls share a single construction. A failed construction
// is reported to the caller and attempted again on the next call.
type LazySummarizer struct {
	factory    FactoryFunc
	summarizer port.Summarizer
	mutex      sync.Mutex
}

// Summarize implements port.Summarizer.
func (s *LazySummarizer) Summarize(ctx context.Context, text string, funcs ...port.SummarizeOptionFunc) (string, error) {
	summarizer, err := s.get(ctx)
	if err != nil {
		return "", errors.Wrap(err, "could not initialize summarizer")
	}

	return summarizer.Summarize(ctx, text, funcs...)
}

func (s *LazySummarizer) get(ctx context.Context) (port.Summarizer, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.summarizer != nil {
		return s.summarizer, nil
	}

	summarizer, err := s.factory(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.summarizer = summarizer

	return summarizer, nil
}

func NewLazySummarizer(factory FactoryFunc) *LazySummarizer {
	return &LazySummarizer{
		factory: factory,
	}
}

var _ port.Summarizer = &LazySummarizer{}
