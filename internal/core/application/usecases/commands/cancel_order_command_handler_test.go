package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
)

func placedOrder(t *testing.T, customerID, medID kernel.UUID, quantity int) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(12550)
	require.NoError(t, err)
	item, err := order.NewItem(medID, quantity, price)
	require.NoError(t, err)
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, testShipping(t), order.PaymentMethodCod,
		order.StatusPlaced, false, nil, "", "", "", time.Now().UTC(), 1, []order.Item{item},
	)
	require.NoError(t, err)
	return aggregate
}

func TestCancelOrderCommandHandler_Handle_RestoresStock(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	medID := kernel.NewUUID()
	aggregate := placedOrder(t, customerID, medID, 2)
	med := testMedicine(t, medID, 3)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), customerID, kernel.RoleCustomer)
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	factory := new(MockCheckoutUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("GetForUpdate", ctx, medID).Return(med, nil).Once(),
		medicineRepo.On("Update", ctx, med).Return(nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusCancelled, aggregate.Status())
	require.Equal(t, 5, med.Stock())
	medicineRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_SkipsDeletedMedicineRows(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	medID := kernel.NewUUID()
	aggregate := placedOrder(t, customerID, medID, 2)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), customerID, kernel.RoleCustomer)
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	factory := new(MockCheckoutUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("GetForUpdate", ctx, medID).Return(nil, errs.NewObjectNotFoundError("medicineID", medID)).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusCancelled, aggregate.Status())
	medicineRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ForeignOrderLooksAbsent(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, kernel.NewUUID(), kernel.NewUUID(), 1)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	factory := new(MockCheckoutUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Equal(t, order.StatusPlaced, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveryRoleRejected(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.RoleDelivery)
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(new(MockCheckoutUoWFactory))
	err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrCancellationNotAllowed)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderRejected(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := placedOrder(t, customerID, kernel.NewUUID(), 1)
	require.NoError(t, aggregate.Advance(kernel.RoleDelivery, order.StatusPacked))
	require.NoError(t, aggregate.Advance(kernel.RoleDelivery, order.StatusShipped))
	require.NoError(t, aggregate.Advance(kernel.RoleDelivery, order.StatusDelivered))

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), customerID, kernel.RoleCustomer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	factory := new(MockCheckoutUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	uow.AssertExpectations(t)
}
