package repository

import (
	"Stash/internal/models"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	GenericRepository[models.Category]
	FindByName(name string) (*models.Category, error)
}

type CategoryRepositoryImpl struct {
	GenericRepository[models.Category]
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Category](db),
		db:                db,
	}
}

func (r *CategoryRepositoryImpl) FindByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

type TagRepository interface {
	GenericRepository[models.Tag]
	FindByIDs(ids []uuid.UUID) ([]models.Tag, error)
}

type TagRepositoryImpl struct {
	GenericRepository[models.Tag]
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &TagRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Tag](db),
		db:                db,
	}
}

func (r *TagRepositoryImpl) FindByIDs(ids []uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}
