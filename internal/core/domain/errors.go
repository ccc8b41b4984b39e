package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from transport errors, which are returned unchanged.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOperation indicates a browse call that does not fit the node kind,
	// such as a flat browse on a container.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)

// CommandError is a failure reported by the device in response to a command.
type CommandError struct {
	// Command is the command that failed (e.g., "browse/browse").
	Command string

	// ID is the device error id.
	ID int

	// Text is the device error text.
	Text string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("heos: command %s failed (eid=%d): %s", e.Command, e.ID, e.Text)
}

// Device error ids.
const (
	ErrIDUnrecognisedCommand = 1
	ErrIDInvalidID           = 2
	ErrIDWrongArguments      = 3
	ErrIDDataNotAvailable    = 4
	ErrIDSystemError         = 11
)

// IsCommandError checks if the error was reported by the device.
func IsCommandError(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}
