package types

import (
	"errors"
	"fmt"
)

// ErrNoViableRoute is returned when no candidate route survives the
// caller's slippage ceiling. It is an expected outcome, not a fault.
var ErrNoViableRoute = errors.New("no viable route")

// InvalidRequestError reports a request rejected before simulation,
// naming the offending field.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

// IsInvalidRequest reports whether err is an InvalidRequestError.
func IsInvalidRequest(err error) bool {
	var ire *InvalidRequestError
	return errors.As(err, &ire)
}
