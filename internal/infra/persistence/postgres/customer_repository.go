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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByMerchant retrieves customers for a merchant ordered by last name.
func (repo *customerRepository) FindByMerchant(ctx context.Context, merchantID string, limit int) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	query := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("last_name ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find customers by merchant")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// UpsertBatch replaces the given customers in one statement keyed on the
// (id, merchant_id) composite primary key. A single batch means the sync is
// all rows or none; callers must not commit partial results.
func (repo *customerRepository) UpsertBatch(ctx context.Context, customers []*entity.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	customerModels := make([]*model.CustomerModel, 0, len(customers))
	for _, customer := range customers {
		customerModels = append(customerModels, fromCustomerDomain(customer))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}, {Name: "merchant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name", "last_name", "email", "phone_number", "updated_at",
			}),
		}).
		Create(&customerModels).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert customers")
	}

	return nil
}

func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:              m.ID,
		MerchantID:      m.MerchantID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Email:           m.Email,
		PhoneNumber:     m.PhoneNumber,
		VisitCount:      m.VisitCount,
		TotalSpendCents: m.TotalSpendCents,
		LastVisitDate:   m.LastVisitDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromCustomerDomain(customer *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:              customer.ID,
		MerchantID:      customer.MerchantID,
		FirstName:       customer.FirstName,
		LastName:        customer.LastName,
		Email:           customer.Email,
		PhoneNumber:     customer.PhoneNumber,
		VisitCount:      customer.VisitCount,
		TotalSpendCents: customer.TotalSpendCents,
		LastVisitDate:   customer.LastVisitDate,
		CreatedAt:       customer.CreatedAt,
		UpdatedAt:       customer.UpdatedAt,
	}
}
