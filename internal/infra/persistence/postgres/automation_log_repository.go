package postgres

import (
	"context"

	"autopilot/internal/domain/entity"
	"autopilot/internal/domain/repository"
	"autopilot/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// automationLogRepository implements the repository.AutomationLogRepository interface.
type automationLogRepository struct {
	db *gorm.DB
}

// NewAutomationLogRepository is the constructor for automationLogRepository.
func NewAutomationLogRepository(db *gorm.DB) repository.AutomationLogRepository {
	return &automationLogRepository{
		db: db,
	}
}

// FindByMerchant retrieves automation log entries for a merchant, newest first.
func (repo *automationLogRepository) FindByMerchant(ctx context.Context, merchantID string, limit int) ([]*entity.AutomationLog, error) {
	var logModels []*model.AutomationLogModel

	query := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find automation logs by merchant")
	}

	logs := make([]*entity.AutomationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toAutomationLogDomain(logM))
	}

	return logs, nil
}

func toAutomationLogDomain(m *model.AutomationLogModel) *entity.AutomationLog {
	return &entity.AutomationLog{
		ID:          m.ID,
		MerchantID:  m.MerchantID,
		ActionType:  m.ActionType,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
