package routetable

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAddress = errors.New("invalid IPv4 address")

	ErrInvertedRange = errors.New("range start is greater than range end")

	ErrMisalignedRange = errors.New("range is not an aligned CIDR block")
)

// AddressError reports that one argument of an operation failed to parse as
// an IPv4 dotted-quad address. Field names the offending argument (for
// example "start", "dest", or "query").
type AddressError struct {
	Err   error
	Field string
	Input string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%s: %v (input=%q)", e.Field, e.Err, e.Input)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}

// RangeError reports that a (start, end) pair was rejected by strict range
// validation. PrefixLen is the common-prefix length the reducer inferred
// before the range was rejected.
type RangeError struct {
	Err       error
	Start     string
	End       string
	PrefixLen int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v (start=%q, end=%q, prefix_len=%d)",
		e.Err, e.Start, e.End, e.PrefixLen)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
