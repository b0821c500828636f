package icvm

import (
	"errors"
	"fmt"
)

type InvalidInstructionError struct {
	Address int
	Word    int
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction at %d: %d", e.Address, e.Word)
}

type OutOfBoundsError struct {
	Address int
	Size    int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("address %d out of bounds (memory size %d)", e.Address, e.Size)
}

var ErrInputStarved = errors.New("input starved")

// IsFault reports whether err is a fault raised by program execution.
func IsFault(err error) bool {
	var invalid *InvalidInstructionError
	var outOfBounds *OutOfBoundsError
	return errors.As(err, &invalid) || errors.As(err, &outOfBounds)
}
