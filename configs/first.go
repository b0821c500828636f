package configs

import (
	"errors"
	"fmt"
)

// Lookup decodes the value at path from the first config file that sets it.
// ok is false when no file does.
func Lookup[T any](loader Loader, path string) (value T, ok bool, err error) {
	err = loader.AssignFirst(path, &value)
	switch {
	case errors.Is(err, ErrValueNotFound):
		return value, false, nil
	case err != nil:
		return value, false, err
	}
	return value, true, nil
}

// First is Lookup for values validated by the schema. An unset path gives
// the zero value, a broken config file panics.
func First[T any](loader Loader, path string) T {
	value, _, err := Lookup[T](loader, path)
	if err != nil {
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}
