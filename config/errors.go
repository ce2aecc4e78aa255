package config

import (
	"errors"
	"fmt"
)

var ErrMissingMongoURI = errors.New("MONGOURI not set in environment")

type InvalidValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Key, e.Value, e.Err)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }
