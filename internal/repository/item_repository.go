package repository

import (
	"Stash/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemFilter struct {
	LocationID *uuid.UUID
	CategoryID *uuid.UUID
	TagID      *uuid.UUID
	Condition  string
	Search     string
	Sort       string
}

type ConditionCount struct {
	Condition models.Condition `json:"condition"`
	Count     int64            `json:"count"`
}

type ItemRepository interface {
	GenericRepository[models.Item]
	FindByIDWithRelations(id uuid.UUID) (*models.Item, error)
	FindByLocation(locationID uuid.UUID) ([]models.Item, error)
	FindOwnedIDs(userID uuid.UUID) ([]uuid.UUID, error)
	FindAllIDs() ([]uuid.UUID, error)
	FindIDsInLocations(locationIDs []uuid.UUID) ([]uuid.UUID, error)
	FindAccessible(ids []uuid.UUID, filter ItemFilter) ([]models.Item, error)
	FindRecent(ids []uuid.UUID, limit int) ([]models.Item, error)
	SearchByText(query string, ids []uuid.UUID, limit int) ([]models.Item, error)
	CountIn(ids []uuid.UUID) (int64, error)
	CountByCondition(ids []uuid.UUID) ([]ConditionCount, error)
	ReplaceTags(item *models.Item, tags []models.Tag) error
}

type ItemRepositoryImpl struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl) FindByIDWithRelations(id uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := r.db.Preload("Tags").Preload("Location").Preload("Category").First(&item, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepositoryImpl) FindByLocation(locationID uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Preload("Tags").Where("location_id = ?", locationID).Order("name").Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) FindOwnedIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Item{}).Where("owner_id = ?", userID).Pluck("id", &ids).Error
	return ids, err
}

func (r *ItemRepositoryImpl) FindAllIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Item{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *ItemRepositoryImpl) FindIDsInLocations(locationIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(locationIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.Model(&models.Item{}).Where("location_id IN ?", locationIDs).Pluck("id", &ids).Error
	return ids, err
}

func (r *ItemRepositoryImpl) FindAccessible(ids []uuid.UUID, filter ItemFilter) ([]models.Item, error) {
	query := r.db.Preload("Tags").Where("items.id IN ?", ids)
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", *filter.LocationID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.TagID != nil {
		query = query.Joins("JOIN item_tags ON item_tags.item_id = items.id AND item_tags.tag_id = ?", *filter.TagID)
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	sort := filter.Sort
	switch sort {
	case "name":
	case "quantity":
	case "created_at":
	case "updated_at":
	default:
		sort = "created_at DESC"
	}
	var items []models.Item
	err := query.Order(sort).Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) FindRecent(ids []uuid.UUID, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("id IN ?", ids).Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) SearchByText(query string, ids []uuid.UUID, limit int) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + query + "%"
	err := r.db.Where("id IN ? AND (name LIKE ? OR description LIKE ?)", ids, pattern, pattern).
		Order("name").Limit(limit).Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) CountIn(ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Item{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *ItemRepositoryImpl) CountByCondition(ids []uuid.UUID) ([]ConditionCount, error) {
	var counts []ConditionCount
	err := r.db.Model(&models.Item{}).
		Select("condition, COUNT(id) AS count").
		Where("id IN ?", ids).
		Group("condition").
		Scan(&counts).Error
	return counts, err
}

func (r *ItemRepositoryImpl) ReplaceTags(item *models.Item, tags []models.Tag) error {
	return r.db.Model(item).Association("Tags").Replace(tags)
}
