package repository

import (
	"Stash/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationFilter struct {
	RoomType string
	IsBox    *bool
	Search   string
	Sort     string
}

type LocationRepository interface {
	GenericRepository[models.Location]
	FindChildren(parentID uuid.UUID) ([]models.Location, error)
	FindOwnedIDs(userID uuid.UUID) ([]uuid.UUID, error)
	FindAllIDs() ([]uuid.UUID, error)
	FindAccessible(ids []uuid.UUID, filter LocationFilter) ([]models.Location, error)
	FindByRoomType(roomType models.RoomType, ids []uuid.UUID) ([]models.Location, error)
	SearchByName(query string, ids []uuid.UUID, limit int) ([]models.Location, error)
	CountIn(ids []uuid.UUID) (int64, error)
	CountBoxesIn(ids []uuid.UUID) (int64, error)
	DeleteTree(id uuid.UUID) error
}

type LocationRepositoryImpl struct {
	GenericRepository[models.Location]
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &LocationRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Location](db),
		db:                db,
	}
}

func (r *LocationRepositoryImpl) FindChildren(parentID uuid.UUID) ([]models.Location, error) {
	var children []models.Location
	err := r.db.Where("parent_id = ?", parentID).Order("name").Find(&children).Error
	return children, err
}

func (r *LocationRepositoryImpl) FindOwnedIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Location{}).Where("owner_id = ?", userID).Pluck("id", &ids).Error
	return ids, err
}

func (r *LocationRepositoryImpl) FindAllIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Location{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *LocationRepositoryImpl) FindAccessible(ids []uuid.UUID, filter LocationFilter) ([]models.Location, error) {
	query := r.db.Where("id IN ?", ids)
	if filter.RoomType != "" {
		query = query.Where("room_type = ?", filter.RoomType)
	}
	if filter.IsBox != nil {
		query = query.Where("is_box = ?", *filter.IsBox)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	sort := filter.Sort
	switch sort {
	case "", "name":
		sort = "name"
	case "created_at", "-created_at":
		if sort == "-created_at" {
			sort = "created_at DESC"
		}
	default:
		sort = "name"
	}
	var locations []models.Location
	err := query.Order(sort).Find(&locations).Error
	return locations, err
}

func (r *LocationRepositoryImpl) FindByRoomType(roomType models.RoomType, ids []uuid.UUID) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Where("room_type = ? AND id IN ?", roomType, ids).Order("name").Find(&locations).Error
	return locations, err
}

func (r *LocationRepositoryImpl) SearchByName(query string, ids []uuid.UUID, limit int) ([]models.Location, error) {
	var locations []models.Location
	pattern := "%" + query + "%"
	err := r.db.Where("id IN ? AND (name LIKE ? OR room_type LIKE ?)", ids, pattern, pattern).
		Order("name").Limit(limit).Find(&locations).Error
	return locations, err
}

func (r *LocationRepositoryImpl) CountIn(ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Location{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *LocationRepositoryImpl) CountBoxesIn(ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Location{}).Where("id IN ? AND is_box = ?", ids, true).Count(&count).Error
	return count, err
}

// DeleteTree removes a location and its descendants in one transaction.
// Items referencing any deleted location get their location nulled, matching
// the SET NULL relation on Item.Location.
func (r *LocationRepositoryImpl) DeleteTree(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ids := []uuid.UUID{id}
		frontier := []uuid.UUID{id}
		for len(frontier) > 0 {
			var next []uuid.UUID
			if err := tx.Model(&models.Location{}).Where("parent_id IN ?", frontier).Pluck("id", &next).Error; err != nil {
				return err
			}
			ids = append(ids, next...)
			frontier = next
		}
		if err := tx.Model(&models.Item{}).Where("location_id IN ?", ids).Update("location_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("location_id IN ?", ids).Delete(&models.LocationShare{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Location{}).Error
	})
}
