package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrProcessNextOrderCommandIsNotConstructed = errors.New(
	"ProcessNextOrderCommand must be created via NewProcessNextOrderCommand constructor",
)

// ProcessNextOrderCommand triggers fulfillment of the next backlog order.
// This is a parameterless command: lane precedence alone decides which
// order is taken.
type ProcessNextOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessNextOrderCommand creates a command to process the next order.
func NewProcessNextOrderCommand() ProcessNextOrderCommand {
	return ProcessNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ProcessNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessNextOrderCommandIsNotConstructed)
}
