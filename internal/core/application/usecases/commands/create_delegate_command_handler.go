package commands

import (
	"context"

	"docdispatch/internal/core/domain/model/delegate"
	"docdispatch/internal/core/domain/model/kernel"
)

// CreateDelegateCommandHandler handles the business logic for delegate registration.
// Storage-level uniqueness on (city, service) backs the directory invariant;
// a conflicting registration surfaces as errs.ErrObjectAlreadyExists.
type CreateDelegateCommandHandler struct {
	uowFactory DelegateUoWFactory
}

// NewCreateDelegateCommandHandler creates a handler for delegate registration operations.
func NewCreateDelegateCommandHandler(uowFactory DelegateUoWFactory) CreateDelegateCommandHandler {
	return CreateDelegateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delegate registration command.
func (h *CreateDelegateCommandHandler) Handle(ctx context.Context, cmd CreateDelegateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	city, err := kernel.NewCity(cmd.CityName())
	if err != nil {
		return err
	}

	newDelegate, err := delegate.NewDelegate(
		cmd.DelegateID(), cmd.AccountID(), cmd.Name(), city, cmd.Service())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DelegateRepository().Add(ctx, newDelegate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
