package impl

import (
	"context"
	"testing"

	"autopilot/config"
	"autopilot/internal/domain/entity"
	domainerrors "autopilot/internal/domain/errors"
	"autopilot/internal/domain/service"
	mockRepo "autopilot/internal/mocks/repository"
	mockService "autopilot/internal/mocks/service"
	"autopilot/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oauthServiceFixtures holds all test dependencies for oauth service tests.
type oauthServiceFixtures struct {
	service      usecase.OAuthUsecase
	pos          *mockService.MockPOSService
	merchantRepo *mockRepo.MockMerchantRepository
	cfg          *config.Config
}

func createTestOAuthService(t *testing.T) oauthServiceFixtures {
	cfg := newTestConfig()
	pos := mockService.NewMockPOSService(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	svc := NewOAuthService(cfg, pos, merchantRepo, newDiscardLogger())

	return oauthServiceFixtures{
		service:      svc,
		pos:          pos,
		merchantRepo: merchantRepo,
		cfg:          cfg,
	}
}

func TestOAuthService_CompleteConnect_Success(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	fx.pos.EXPECT().
		ExchangeCode(ctx, "auth-code").
		Return(&service.TokenGrant{AccessToken: "tok-123", MerchantID: "M1"}, nil)
	fx.merchantRepo.EXPECT().
		Upsert(ctx, &entity.Merchant{CloverMerchantID: "M1", AccessToken: "tok-123"}).
		Return(nil)

	merchantID, err := fx.service.CompleteConnect(ctx, "auth-code", "M2")

	require.NoError(t, err)
	assert.Equal(t, "M1", merchantID, "token response merchant id wins over the callback parameter")
}

func TestOAuthService_CompleteConnect_FallbackMerchantID(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	fx.pos.EXPECT().
		ExchangeCode(ctx, "auth-code").
		Return(&service.TokenGrant{AccessToken: "tok-123"}, nil)
	fx.merchantRepo.EXPECT().
		Upsert(ctx, &entity.Merchant{CloverMerchantID: "M2", AccessToken: "tok-123"}).
		Return(nil)

	merchantID, err := fx.service.CompleteConnect(ctx, "auth-code", "M2")

	require.NoError(t, err)
	assert.Equal(t, "M2", merchantID)
}

func TestOAuthService_CompleteConnect_MissingCode(t *testing.T) {
	fx := createTestOAuthService(t)

	merchantID, err := fx.service.CompleteConnect(context.Background(), "", "M2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthCodeMissing)
	assert.Empty(t, merchantID)
}

func TestOAuthService_CompleteConnect_MissingConfig(t *testing.T) {
	fx := createTestOAuthService(t)
	fx.cfg.Clover.AppSecret = ""

	merchantID, err := fx.service.CompleteConnect(context.Background(), "auth-code", "M2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthConfigMissing)
	assert.Empty(t, merchantID)
}

func TestOAuthService_CompleteConnect_ExchangeFailed(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	fx.pos.EXPECT().
		ExchangeCode(ctx, "bad-code").
		Return(nil, errors.New("token endpoint returned 400"))

	merchantID, err := fx.service.CompleteConnect(ctx, "bad-code", "M2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthExchangeFailed)
	assert.Empty(t, merchantID)
}

func TestOAuthService_CompleteConnect_MerchantIDMissingEverywhere(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	fx.pos.EXPECT().
		ExchangeCode(ctx, "auth-code").
		Return(&service.TokenGrant{AccessToken: "tok-123"}, nil)

	// No Upsert expectation: nothing may be written without a merchant id.
	merchantID, err := fx.service.CompleteConnect(ctx, "auth-code", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMerchantIDMissing)
	assert.Empty(t, merchantID)
}

func TestOAuthService_CompleteConnect_UpsertFailed(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to upsert merchant")
	fx.pos.EXPECT().
		ExchangeCode(ctx, "auth-code").
		Return(&service.TokenGrant{AccessToken: "tok-123", MerchantID: "M1"}, nil)
	fx.merchantRepo.EXPECT().
		Upsert(ctx, &entity.Merchant{CloverMerchantID: "M1", AccessToken: "tok-123"}).
		Return(dbErr)

	merchantID, err := fx.service.CompleteConnect(ctx, "auth-code", "")

	require.Error(t, err)
	assert.Equal(t, dbErr, err)
	assert.Empty(t, merchantID)
}
