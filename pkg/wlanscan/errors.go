package wlanscan

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrUnsupported is returned by the service opener on platforms without wlanapi
var ErrUnsupported = errors.New("wireless configuration service is not available on this platform")

// ErrNoInterfaces is returned when enumeration succeeds but finds no adapters
var ErrNoInterfaces = errors.New("no wireless interfaces found")

// StatusError is a failed service call along with the status code it returned
type StatusError struct {
	Op   string
	Code uint32
	Err  error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed with error code %d: %v", e.Op, e.Code, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

func newStatusError(op string, err error) *StatusError {
	se := &StatusError{Op: op, Err: err}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		se.Code = uint32(errno)
	}

	return se
}

// StatusCode extracts the service status code from err
func StatusCode(err error) (uint32, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}

	return 0, false
}
