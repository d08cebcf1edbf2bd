package listing

import (
	"errors"
)

var ErrInvalidArgument = errors.New("invalid argument")
var ErrInvalidPayload = errors.New("invalid payload")
var ErrLoadInProgress = errors.New("load already in progress")

// LoadFailure is returned by Fetch and Load when the source could not deliver a
// usable record set. The engine state is untouched when it is returned.
type LoadFailure struct {
	Err error
}

func (f *LoadFailure) Error() string {
	return "load failure: " + f.Err.Error()
}

func (f *LoadFailure) Unwrap() error {
	return f.Err
}
