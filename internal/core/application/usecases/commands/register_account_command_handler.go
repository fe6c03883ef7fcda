package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/account"
	"pharmacy/internal/pkg/errs"
)

// ErrUsernameIsTaken is returned when the requested login name already
// belongs to another account.
var ErrUsernameIsTaken = errors.New("username is already taken")

// RegisterAccountCommandHandler registers new accounts.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the account with an empty profile.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
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

	_, err := accountRepo.GetByUsername(ctx, cmd.Username())
	if err == nil {
		return ErrUsernameIsTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	acc, err := account.NewAccount(cmd.AccountID(), cmd.Username(), cmd.Role())
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
