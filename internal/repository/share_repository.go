package repository

import (
	"Stash/internal/models"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocationShareRepository interface {
	FindPair(locationID, userID uuid.UUID) (*models.LocationShare, error)
	FindByLocation(locationID uuid.UUID) ([]models.LocationShare, error)
	FindLocationIDsForUser(userID uuid.UUID) ([]uuid.UUID, error)
	Upsert(share *models.LocationShare) error
	DeletePair(locationID, userID uuid.UUID) (int64, error)
}

type LocationShareRepositoryImpl struct {
	db *gorm.DB
}

func NewLocationShareRepository(db *gorm.DB) LocationShareRepository {
	return &LocationShareRepositoryImpl{db: db}
}

func (r *LocationShareRepositoryImpl) FindPair(locationID, userID uuid.UUID) (*models.LocationShare, error) {
	var share models.LocationShare
	err := r.db.Where("location_id = ? AND user_id = ?", locationID, userID).First(&share).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &share, nil
}

func (r *LocationShareRepositoryImpl) FindByLocation(locationID uuid.UUID) ([]models.LocationShare, error) {
	var shares []models.LocationShare
	err := r.db.Preload("User").Where("location_id = ?", locationID).Order("created_at").Find(&shares).Error
	return shares, err
}

func (r *LocationShareRepositoryImpl) FindLocationIDsForUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.LocationShare{}).Where("user_id = ?", userID).Pluck("location_id", &ids).Error
	return ids, err
}

// Upsert converges concurrent grants for the same (location, user) pair to a
// single row, last writer winning on role.
func (r *LocationShareRepositoryImpl) Upsert(share *models.LocationShare) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "location_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "created_by_id"}),
	}).Create(share).Error
}

func (r *LocationShareRepositoryImpl) DeletePair(locationID, userID uuid.UUID) (int64, error) {
	result := r.db.Where("location_id = ? AND user_id = ?", locationID, userID).Delete(&models.LocationShare{})
	return result.RowsAffected, result.Error
}

type ItemShareRepository interface {
	FindPair(itemID, userID uuid.UUID) (*models.ItemShare, error)
	FindByItem(itemID uuid.UUID) ([]models.ItemShare, error)
	FindItemIDsForUser(userID uuid.UUID) ([]uuid.UUID, error)
	Upsert(share *models.ItemShare) error
	DeletePair(itemID, userID uuid.UUID) (int64, error)
}

type ItemShareRepositoryImpl struct {
	db *gorm.DB
}

func NewItemShareRepository(db *gorm.DB) ItemShareRepository {
	return &ItemShareRepositoryImpl{db: db}
}

func (r *ItemShareRepositoryImpl) FindPair(itemID, userID uuid.UUID) (*models.ItemShare, error) {
	var share models.ItemShare
	err := r.db.Where("item_id = ? AND user_id = ?", itemID, userID).First(&share).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &share, nil
}

func (r *ItemShareRepositoryImpl) FindByItem(itemID uuid.UUID) ([]models.ItemShare, error) {
	var shares []models.ItemShare
	err := r.db.Preload("User").Where("item_id = ?", itemID).Order("created_at").Find(&shares).Error
	return shares, err
}

func (r *ItemShareRepositoryImpl) FindItemIDsForUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ItemShare{}).Where("user_id = ?", userID).Pluck("item_id", &ids).Error
	return ids, err
}

func (r *ItemShareRepositoryImpl) Upsert(share *models.ItemShare) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "created_by_id"}),
	}).Create(share).Error
}

func (r *ItemShareRepositoryImpl) DeletePair(itemID, userID uuid.UUID) (int64, error) {
	result := r.db.Where("item_id = ? AND user_id = ?", itemID, userID).Delete(&models.ItemShare{})
	return result.RowsAffected, result.Error
}
