package services

import (
	"Stash/internal/errs"
	"Stash/internal/models"
	"Stash/internal/repository"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TaxonomyService manages the shared category and tag vocabularies. These
// are global, not per user, so there is no access gating beyond requiring
// an authenticated actor at the handler layer.
type TaxonomyService interface {
	ListCategories() ([]models.Category, error)
	CreateCategory(name, description, color, icon string) (*models.Category, error)
	UpdateCategory(id uuid.UUID, name, description, color, icon *string) (*models.Category, error)
	DeleteCategory(id uuid.UUID) error
	ListTags() ([]models.Tag, error)
	CreateTag(name, color string) (*models.Tag, error)
	DeleteTag(id uuid.UUID) error
}

type taxonomyServiceImpl struct {
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

func NewTaxonomyService(categoryRepo repository.CategoryRepository, tagRepo repository.TagRepository) TaxonomyService {
	return &taxonomyServiceImpl{categoryRepo: categoryRepo, tagRepo: tagRepo}
}

func (s *taxonomyServiceImpl) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *taxonomyServiceImpl) CreateCategory(name, description, color, icon string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	existing, err := s.categoryRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category %q already exists", errs.ErrValidation, name)
	}
	category := &models.Category{Name: name, Description: description, Color: color, Icon: icon}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *taxonomyServiceImpl) UpdateCategory(id uuid.UUID, name, description, color, icon *string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category", errs.ErrNotFound)
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
		}
		category.Name = trimmed
	}
	if description != nil {
		category.Description = *description
	}
	if color != nil {
		category.Color = *color
	}
	if icon != nil {
		category.Icon = *icon
	}
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *taxonomyServiceImpl) DeleteCategory(id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: category", errs.ErrNotFound)
	}
	return s.categoryRepo.Delete(id)
}

func (s *taxonomyServiceImpl) ListTags() ([]models.Tag, error) {
	return s.tagRepo.FindAll()
}

func (s *taxonomyServiceImpl) CreateTag(name, color string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	tag := &models.Tag{Name: name, Color: color}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *taxonomyServiceImpl) DeleteTag(id uuid.UUID) error {
	tag, err := s.tagRepo.FindByID(id)
	if err != nil {
		return err
	}
	if tag == nil {
		return fmt.Errorf("%w: tag", errs.ErrNotFound)
	}
	return s.tagRepo.Delete(id)
}
