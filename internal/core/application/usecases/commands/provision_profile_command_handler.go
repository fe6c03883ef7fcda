package commands

import (
	"context"
)

// ProvisionProfileCommandHandler fills in account contact details.
type ProvisionProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewProvisionProfileCommandHandler creates a handler for profile provisioning.
func NewProvisionProfileCommandHandler(uowFactory AccountUoWFactory) ProvisionProfileCommandHandler {
	return ProvisionProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle provisions the profile, replacing any previous contact details.
func (h ProvisionProfileCommandHandler) Handle(ctx context.Context, cmd ProvisionProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	acc, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = acc.ProvisionProfile(cmd.Phone(), cmd.Address()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
