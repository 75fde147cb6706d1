package services

import (
	"Stash/internal/errs"
	"Stash/internal/models"
	"Stash/internal/repository"
	"fmt"

	"github.com/google/uuid"
)

type ItemCreate struct {
	Name        string
	Description string
	Quantity    int
	Condition   models.Condition
	LocationID  *uuid.UUID
	CategoryID  *uuid.UUID
	TagIDs      []uuid.UUID
}

type ItemUpdate struct {
	Name        *string
	Description *string
	Quantity    *int
	Condition   *models.Condition
	LocationID  *uuid.UUID
	SetLocation bool
	CategoryID  *uuid.UUID
	SetCategory bool
	TagIDs      []uuid.UUID
	SetTags     bool
}

type ItemDetail struct {
	Item     models.Item      `json:"item"`
	Logs     []models.ItemLog `json:"logs"`
	UserRole models.Role      `json:"user_role"`
}

type ItemService interface {
	CreateItem(actor *models.User, params ItemCreate) (*models.Item, error)
	GetItem(actor *models.User, id uuid.UUID) (*ItemDetail, error)
	UpdateItem(actor *models.User, id uuid.UUID, params ItemUpdate) (*models.Item, error)
	DeleteItem(actor *models.User, id uuid.UUID) error
	ListItems(actor *models.User, filter repository.ItemFilter) ([]models.Item, error)
	ItemLogs(actor *models.User, id uuid.UUID, limit int) ([]models.ItemLog, error)
}

type itemServiceImpl struct {
	itemRepo          repository.ItemRepository
	locationRepo      repository.LocationRepository
	tagRepo           repository.TagRepository
	categoryRepo      repository.CategoryRepository
	itemLogRepo       repository.ItemLogRepository
	locationShareRepo repository.LocationShareRepository
	itemShareRepo     repository.ItemShareRepository
	accessService     AccessService
	notifications     NotificationService
	cacheService      CacheService
	logService        LogService
}

func NewItemService(
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	tagRepo repository.TagRepository,
	categoryRepo repository.CategoryRepository,
	itemLogRepo repository.ItemLogRepository,
	locationShareRepo repository.LocationShareRepository,
	itemShareRepo repository.ItemShareRepository,
	accessService AccessService,
	notifications NotificationService,
	cacheService CacheService,
	logService LogService,
) ItemService {
	return &itemServiceImpl{
		itemRepo:          itemRepo,
		locationRepo:      locationRepo,
		tagRepo:           tagRepo,
		categoryRepo:      categoryRepo,
		itemLogRepo:       itemLogRepo,
		locationShareRepo: locationShareRepo,
		itemShareRepo:     itemShareRepo,
		accessService:     accessService,
		notifications:     notifications,
		cacheService:      cacheService,
		logService:        logService,
	}
}

func validateQuantity(quantity int) error {
	if quantity < models.MinQuantity {
		return fmt.Errorf("%w: quantity must be greater than 0", errs.ErrValidation)
	}
	if quantity > models.MaxQuantity {
		return fmt.Errorf("%w: quantity is too large (max %d)", errs.ErrValidation, models.MaxQuantity)
	}
	return nil
}

func (s *itemServiceImpl) CreateItem(actor *models.User, params ItemCreate) (*models.Item, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.ErrPermissionDenied
	}
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	if params.Quantity == 0 {
		params.Quantity = models.MinQuantity
	}
	if err := validateQuantity(params.Quantity); err != nil {
		return nil, err
	}
	if params.Condition == "" {
		params.Condition = models.ConditionGood
	}
	if !params.Condition.Valid() {
		return nil, fmt.Errorf("%w: invalid condition %q", errs.ErrValidation, params.Condition)
	}

	var location *models.Location
	if params.LocationID != nil {
		var err error
		location, err = s.locationRepo.FindByID(*params.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, fmt.Errorf("%w: location", errs.ErrNotFound)
		}
		canView, err := s.accessService.CanViewLocation(actor, location)
		if err != nil {
			return nil, err
		}
		if !canView {
			return nil, errs.ErrPermissionDenied
		}
	}
	if params.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(*params.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: category", errs.ErrNotFound)
		}
	}

	ownerID := actor.ID
	item := &models.Item{
		Name:        params.Name,
		Description: params.Description,
		Quantity:    params.Quantity,
		Condition:   params.Condition,
		LocationID:  params.LocationID,
		CategoryID:  params.CategoryID,
		OwnerID:     &ownerID,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	if len(params.TagIDs) > 0 {
		tags, err := s.tagRepo.FindByIDs(params.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.itemRepo.ReplaceTags(item, tags); err != nil {
			return nil, err
		}
	}

	s.writeLog(item, models.ActionCreated, fmt.Sprintf("Item %q was created in %s", item.Name, locationName(location)), actor)
	s.invalidateItem(item)

	shareUserIDs := s.locationShareUserIDs(params.LocationID)
	if err := s.notifications.NotifyItemCreated(item, location, shareUserIDs, actor); err != nil {
		s.logService.Log.WithField("item", item.ID).WithError(err).Warn("item notification failed")
	}
	return item, nil
}

func (s *itemServiceImpl) GetItem(actor *models.User, id uuid.UUID) (*ItemDetail, error) {
	item, err := s.itemRepo.FindByIDWithRelations(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item", errs.ErrNotFound)
	}
	role, err := s.accessService.RoleOnItem(actor, item)
	if err != nil {
		return nil, err
	}
	if !role.CanView() {
		return nil, errs.ErrPermissionDenied
	}

	key := s.cacheService.Key(CacheKeyItem, id.String(), "detail", CacheKeyUser, actor.ID.String())
	detail := &ItemDetail{}
	err = s.cacheService.GetOrCompute(key, CacheTTLMedium, detail, func() error {
		logs, err := s.itemLogRepo.FindByItem(id, 10)
		if err != nil {
			return err
		}
		detail.Item = *item
		detail.Logs = logs
		detail.UserRole = role
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *itemServiceImpl) UpdateItem(actor *models.User, id uuid.UUID, params ItemUpdate) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item", errs.ErrNotFound)
	}
	canEdit, err := s.accessService.CanEditItem(actor, item)
	if err != nil {
		return nil, err
	}
	if !canEdit {
		return nil, errs.ErrPermissionDenied
	}

	oldLocationID := item.LocationID
	moved := false

	if params.Name != nil {
		if *params.Name == "" {
			return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
		}
		item.Name = *params.Name
	}
	if params.Description != nil {
		item.Description = *params.Description
	}
	if params.Quantity != nil {
		if err := validateQuantity(*params.Quantity); err != nil {
			return nil, err
		}
		item.Quantity = *params.Quantity
	}
	if params.Condition != nil {
		if !params.Condition.Valid() {
			return nil, fmt.Errorf("%w: invalid condition %q", errs.ErrValidation, *params.Condition)
		}
		item.Condition = *params.Condition
	}
	var newLocation *models.Location
	if params.SetLocation {
		if params.LocationID != nil {
			newLocation, err = s.locationRepo.FindByID(*params.LocationID)
			if err != nil {
				return nil, err
			}
			if newLocation == nil {
				return nil, fmt.Errorf("%w: location", errs.ErrNotFound)
			}
			canView, err := s.accessService.CanViewLocation(actor, newLocation)
			if err != nil {
				return nil, err
			}
			if !canView {
				return nil, errs.ErrPermissionDenied
			}
		}
		moved = !uuidPtrEqual(oldLocationID, params.LocationID)
		item.LocationID = params.LocationID
	}
	if params.SetCategory {
		if params.CategoryID != nil {
			category, err := s.categoryRepo.FindByID(*params.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, fmt.Errorf("%w: category", errs.ErrNotFound)
			}
		}
		item.CategoryID = params.CategoryID
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	if params.SetTags {
		tags, err := s.tagRepo.FindByIDs(params.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.itemRepo.ReplaceTags(item, tags); err != nil {
			return nil, err
		}
	}

	shareUserIDs := s.itemShareUserIDs(item.ID)
	if moved {
		oldName := s.lookupLocationName(oldLocationID)
		newName := locationName(newLocation)
		s.writeLog(item, models.ActionMoved, fmt.Sprintf("Item moved to %s", newName), actor)
		if err := s.notifications.NotifyItemMoved(item, oldName, newName, shareUserIDs, actor); err != nil {
			s.logService.Log.WithField("item", item.ID).WithError(err).Warn("item notification failed")
		}
	} else {
		s.writeLog(item, models.ActionUpdated, "Item details were updated", actor)
		if err := s.notifications.NotifyItemUpdated(item, shareUserIDs, actor); err != nil {
			s.logService.Log.WithField("item", item.ID).WithError(err).Warn("item notification failed")
		}
	}

	s.invalidateItem(item)
	if moved && oldLocationID != nil {
		s.cacheService.InvalidateLocation(*oldLocationID)
	}
	return item, nil
}

func (s *itemServiceImpl) DeleteItem(actor *models.User, id uuid.UUID) error {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: item", errs.ErrNotFound)
	}
	canEdit, err := s.accessService.CanEditItem(actor, item)
	if err != nil {
		return err
	}
	if !canEdit {
		return errs.ErrPermissionDenied
	}

	// The log entry is written before the row delete so the audit trail
	// keeps a record of the item after it is gone.
	shareUserIDs := s.itemShareUserIDs(item.ID)
	s.writeLog(item, models.ActionDeleted, fmt.Sprintf("Item %q was deleted", item.Name), actor)
	if err := s.itemRepo.Delete(id); err != nil {
		return err
	}
	if err := s.notifications.NotifyItemDeleted(item, shareUserIDs, actor); err != nil {
		s.logService.Log.WithField("item", item.ID).WithError(err).Warn("item notification failed")
	}
	s.invalidateItem(item)
	return nil
}

func (s *itemServiceImpl) ListItems(actor *models.User, filter repository.ItemFilter) ([]models.Item, error) {
	ids, err := s.accessService.AccessibleItemIDs(actor)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.itemRepo.FindAccessible(ids, filter)
}

func (s *itemServiceImpl) ItemLogs(actor *models.User, id uuid.UUID, limit int) ([]models.ItemLog, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item", errs.ErrNotFound)
	}
	canView, err := s.accessService.CanViewItem(actor, item)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errs.ErrPermissionDenied
	}
	return s.itemLogRepo.FindByItem(id, limit)
}

// writeLog records item activity; log failures must not fail the mutation.
func (s *itemServiceImpl) writeLog(item *models.Item, action models.LogAction, details string, actor *models.User) {
	entry := &models.ItemLog{
		ItemID:  item.ID,
		Action:  action,
		Details: details,
		UserID:  actorID(actor),
	}
	if err := s.itemLogRepo.Create(entry); err != nil {
		s.logService.Log.WithField("item", item.ID).WithError(err).Warn("item log write failed")
	}
}

func (s *itemServiceImpl) invalidateItem(item *models.Item) {
	s.cacheService.InvalidateItem(item.ID)
	if item.OwnerID != nil {
		s.cacheService.InvalidateUser(*item.OwnerID)
	}
	if item.LocationID != nil {
		s.cacheService.InvalidateLocation(*item.LocationID)
	}
}

func (s *itemServiceImpl) locationShareUserIDs(locationID *uuid.UUID) []uuid.UUID {
	if locationID == nil {
		return nil
	}
	shares, err := s.locationShareRepo.FindByLocation(*locationID)
	if err != nil {
		s.logService.Log.WithField("location", *locationID).WithError(err).Warn("share lookup failed")
		return nil
	}
	ids := make([]uuid.UUID, 0, len(shares))
	for _, share := range shares {
		ids = append(ids, share.UserID)
	}
	return ids
}

func (s *itemServiceImpl) itemShareUserIDs(itemID uuid.UUID) []uuid.UUID {
	shares, err := s.itemShareRepo.FindByItem(itemID)
	if err != nil {
		s.logService.Log.WithField("item", itemID).WithError(err).Warn("share lookup failed")
		return nil
	}
	ids := make([]uuid.UUID, 0, len(shares))
	for _, share := range shares {
		ids = append(ids, share.UserID)
	}
	return ids
}

func (s *itemServiceImpl) lookupLocationName(id *uuid.UUID) string {
	if id == nil {
		return "no location"
	}
	location, err := s.locationRepo.FindByID(*id)
	if err != nil || location == nil {
		return "no location"
	}
	return location.Name
}

func locationName(location *models.Location) string {
	if location == nil {
		return "no location"
	}
	return location.Name
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
