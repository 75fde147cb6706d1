package repository

import (
	"Stash/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemLogRepository interface {
	Create(log *models.ItemLog) error
	FindByItem(itemID uuid.UUID, limit int) ([]models.ItemLog, error)
}

type ItemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewItemLogRepository(db *gorm.DB) ItemLogRepository {
	return &ItemLogRepositoryImpl{db: db}
}

func (r *ItemLogRepositoryImpl) Create(log *models.ItemLog) error {
	return r.db.Create(log).Error
}

func (r *ItemLogRepositoryImpl) FindByItem(itemID uuid.UUID, limit int) ([]models.ItemLog, error) {
	var logs []models.ItemLog
	query := r.db.Where("item_id = ?", itemID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&logs).Error
	return logs, err
}
