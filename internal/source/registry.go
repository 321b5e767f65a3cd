package source

import (
	"net/url"
	"slices"
	"sync"

	"github.com/pkg/errors"
)

var ErrSchemeNotRegistered = errors.New("scheme not registered")

type FactoryFunc func(dsn *url.URL) (Backend, error)

var (
	factoriesMutex sync.RWMutex
	factories      = map[string]FactoryFunc{}
)

func Register(scheme string, factory FactoryFunc) {
	factoriesMutex.Lock()
	defer factoriesMutex.Unlock()

	factories[scheme] = factory
}

// Schemes returns the sorted list of registered schemes.
func Schemes() []string {
	factoriesMutex.RLock()
	defer factoriesMutex.RUnlock()

	schemes := make([]string, 0, len(factories))
	for s := range factories {
		schemes = append(schemes, s)
	}

	slices.Sort(schemes)

	return schemes
}

func New(dsn string) (Backend, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse source url '%s'", dsn)
	}

	factoriesMutex.RLock()
	factory, exists := factories[u.Scheme]
	factoriesMutex.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrSchemeNotRegistered, "no source associated with scheme '%s'", u.Scheme)
	}

	backend, err := factory(u)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return backend, nil
}
