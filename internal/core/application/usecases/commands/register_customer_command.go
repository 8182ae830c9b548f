package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// RegisterCustomerCommand represents a request to register a new customer in
// the catalog. The customer starts with a zero loyalty balance.
//
// Example:
//
//	cmd, err := NewRegisterCustomerCommand("Alice")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory)
//	customerID, err := handler.Handle(ctx, cmd)
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
// Validates that the name is not empty.
func NewRegisterCustomerCommand(name string) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Name returns the customer display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
