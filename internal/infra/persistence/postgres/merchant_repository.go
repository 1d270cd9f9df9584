// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"autopilot/internal/domain/entity"
	domainerrors "autopilot/internal/domain/errors"
	"autopilot/internal/domain/repository"
	"autopilot/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// merchantRepository implements the repository.MerchantRepository interface.
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{
		db: db,
	}
}

// FindByID retrieves a merchant by its Clover merchant identifier.
func (repo *merchantRepository) FindByID(ctx context.Context, cloverMerchantID string) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("clover_merchant_id = ?", cloverMerchantID).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by id")
	}

	return toMerchantDomain(&merchantM), nil
}

// Upsert creates or replaces the merchant record. ON CONFLICT on the primary
// key keeps the operation idempotent, so concurrent OAuth completions for the
// same merchant resolve to last-write-wins without locking.
func (repo *merchantRepository) Upsert(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "clover_merchant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"access_token", "updated_at"}),
		}).
		Create(merchantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required merchant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert merchant")
	}

	merchant.CreatedAt = merchantM.CreatedAt
	merchant.UpdatedAt = merchantM.UpdatedAt

	return nil
}

func toMerchantDomain(m *model.MerchantModel) *entity.Merchant {
	return &entity.Merchant{
		CloverMerchantID: m.CloverMerchantID,
		AccessToken:      m.AccessToken,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromMerchantDomain(merchant *entity.Merchant) *model.MerchantModel {
	return &model.MerchantModel{
		CloverMerchantID: merchant.CloverMerchantID,
		AccessToken:      merchant.AccessToken,
		CreatedAt:        merchant.CreatedAt,
		UpdatedAt:        merchant.UpdatedAt,
	}
}
