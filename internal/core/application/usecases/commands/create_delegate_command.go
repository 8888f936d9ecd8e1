package commands

import (
	"errors"

	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/pkg/guard"
)

var (
	ErrCreateDelegateCommandIsNotConstructed = errors.New(
		"CreateDelegateCommand must be created via NewCreateDelegateCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateDelegateCommand registers a delegate for a (city, service) territory.
// Storage enforces the one-delegate-per-territory invariant: registering a
// second delegate for an occupied territory fails with a uniqueness conflict.
type CreateDelegateCommand struct { //nolint:recvcheck //using for validation
	delegateID kernel.UUID
	accountID  kernel.UUID
	name       string
	cityName   string
	service    kernel.ServiceCategory

	guard guard.ConstructorGuard
}

// NewCreateDelegateCommand creates a command to register a new delegate.
func NewCreateDelegateCommand(
	delegateID kernel.UUID,
	accountID kernel.UUID,
	name string,
	cityName string,
	service kernel.ServiceCategory,
) (CreateDelegateCommand, error) {
	cmd := CreateDelegateCommand{
		cityName: cityName,
		service:  service,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDelegateID(delegateID),
		cmd.setAccountID(accountID),
		cmd.setName(name),
	); err != nil {
		return CreateDelegateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDelegateCommand) Validate() error {
	return c.guard.Validate(ErrCreateDelegateCommandIsNotConstructed)
}

// DelegateID returns the identifier for the new delegate.
func (c CreateDelegateCommand) DelegateID() kernel.UUID { return c.delegateID }

// AccountID returns the login account to link.
func (c CreateDelegateCommand) AccountID() kernel.UUID { return c.accountID }

// Name returns the delegate's human-readable name.
func (c CreateDelegateCommand) Name() string { return c.name }

// CityName returns the raw city name of the territory.
func (c CreateDelegateCommand) CityName() string { return c.cityName }

// Service returns the administrative body type of the territory.
func (c CreateDelegateCommand) Service() kernel.ServiceCategory { return c.service }

func (c *CreateDelegateCommand) setDelegateID(delegateID kernel.UUID) error {
	if err := delegateID.Validate(); err != nil {
		return err
	}
	c.delegateID = delegateID
	return nil
}

func (c *CreateDelegateCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *CreateDelegateCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
