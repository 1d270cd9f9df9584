package impl

import (
	"context"
	"testing"

	"autopilot/internal/domain/entity"
	domainerrors "autopilot/internal/domain/errors"
	mockRepo "autopilot/internal/mocks/repository"
	mockService "autopilot/internal/mocks/service"
	"autopilot/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	pos          *mockService.MockPOSService
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	pos := mockService.NewMockPOSService(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	svc := NewCustomerService(newTestConfig(), pos, customerRepo, newDiscardLogger())

	return customerServiceFixtures{
		service:      svc,
		pos:          pos,
		customerRepo: customerRepo,
	}
}

func TestCustomerService_ListCustomers_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		FindByMerchant(ctx, "M1", 50).
		Return([]*entity.Customer{
			{ID: "C1", MerchantID: "M1", FirstName: "Ada", LastName: "Lovelace", TotalSpendCents: 900, VisitCount: 5},
			{ID: "C2", MerchantID: "M1", FirstName: "Bob", LastName: "Martin", VisitCount: 1},
		}, nil)

	rows, err := fx.service.ListCustomers(ctx, "M1")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entity.CustomerStatusVIP, rows[0].Status)
	assert.Equal(t, entity.CustomerStatusNew, rows[1].Status)
	assert.Equal(t, "Lovelace", rows[0].LastName)
}

func TestCustomerService_ListCustomers_StorageError(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		FindByMerchant(ctx, "M1", 50).
		Return(nil, errors.New("connection refused"))

	rows, err := fx.service.ListCustomers(ctx, "M1")

	require.Error(t, err)
	assert.Nil(t, rows)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestCustomerService_SyncCustomers_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customers := []*entity.Customer{
		{ID: "C1", MerchantID: "M1", FirstName: "Ada", LastName: "Lovelace"},
		{ID: "C2", MerchantID: "M1", FirstName: "Bob", LastName: "Martin"},
	}
	fx.pos.EXPECT().
		FetchCustomers(ctx, "M1", "tok", 1000).
		Return(customers, nil)
	fx.customerRepo.EXPECT().
		UpsertBatch(ctx, customers).
		Return(nil)

	result, err := fx.service.SyncCustomers(ctx, "M1", "tok")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
}

func TestCustomerService_SyncCustomers_EmptyFetch(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.pos.EXPECT().
		FetchCustomers(ctx, "M1", "tok", 1000).
		Return([]*entity.Customer{}, nil)

	// No UpsertBatch expectation: an empty fetch writes nothing.
	result, err := fx.service.SyncCustomers(ctx, "M1", "tok")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Synced)
}

func TestCustomerService_SyncCustomers_FetchFailed(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.pos.EXPECT().
		FetchCustomers(ctx, "M1", "tok", 1000).
		Return(nil, errors.New("customers endpoint returned 500"))

	result, err := fx.service.SyncCustomers(ctx, "M1", "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerSyncFailed)
	assert.Nil(t, result)
}

func TestCustomerService_SyncCustomers_UpsertFailed(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customers := []*entity.Customer{
		{ID: "C1", MerchantID: "M1", FirstName: "Ada", LastName: "Lovelace"},
	}
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "failed to upsert customers")
	fx.pos.EXPECT().
		FetchCustomers(ctx, "M1", "tok", 1000).
		Return(customers, nil)
	fx.customerRepo.EXPECT().
		UpsertBatch(ctx, customers).
		Return(dbErr)

	result, err := fx.service.SyncCustomers(ctx, "M1", "tok")

	require.Error(t, err)
	assert.Equal(t, dbErr, err)
	assert.Nil(t, result)
}
