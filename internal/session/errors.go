package session

import "fmt"

type outOfRangeError struct {
	kind   string
	index  int
	length int
}

func (e outOfRangeError) Error() string {
	return fmt.Sprintf("%s index out of range: %d (have %d)", e.kind, e.index, e.length)
}

func errOutOfRange(kind string, index, length int) error {
	return outOfRangeError{kind: kind, index: index, length: length}
}

// IsOutOfRange reports whether err is a position-out-of-range failure.
func IsOutOfRange(err error) bool {
	_, ok := err.(outOfRangeError)
	return ok
}
