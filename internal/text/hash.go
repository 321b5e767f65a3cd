package text

import (
	"hash/fnv"

	"github.com/pkg/errors"
)

// IntHash returns a stable, non negative integer derived from the given text.
func IntHash(text string) (int, error) {
	hash := fnv.New32a()

	if _, err := hash.Write([]byte(text)); err != nil {
		return 0, errors.WithStack(err)
	}

	return int(hash.Sum32() & 0x7fffffff), nil
}
