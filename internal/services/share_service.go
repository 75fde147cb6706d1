package services

import (
	"Stash/internal/errs"
	"Stash/internal/models"
	"Stash/internal/repository"
	"fmt"

	"github.com/google/uuid"
)

// ShareService creates, updates and revokes share grants. Every mutation
// takes the acting user explicitly and emits its own notification and cache
// invalidation calls; there are no storage-layer hooks.
type ShareService interface {
	ShareLocation(actor *models.User, locationID, granteeID uuid.UUID, role models.Role) (*models.LocationShare, error)
	UnshareLocation(actor *models.User, locationID, granteeID uuid.UUID) error
	ListLocationShares(actor *models.User, locationID uuid.UUID) ([]models.LocationShare, error)

	ShareItem(actor *models.User, itemID, granteeID uuid.UUID, role models.Role) (*models.ItemShare, error)
	UnshareItem(actor *models.User, itemID, granteeID uuid.UUID) error
	ListItemShares(actor *models.User, itemID uuid.UUID) ([]models.ItemShare, error)
}

type shareServiceImpl struct {
	locationRepo      repository.LocationRepository
	itemRepo          repository.ItemRepository
	locationShareRepo repository.LocationShareRepository
	itemShareRepo     repository.ItemShareRepository
	userRepo          repository.UserRepository
	accessService     AccessService
	notifications     NotificationService
	cacheService      CacheService
	logService        LogService
}

func NewShareService(
	locationRepo repository.LocationRepository,
	itemRepo repository.ItemRepository,
	locationShareRepo repository.LocationShareRepository,
	itemShareRepo repository.ItemShareRepository,
	userRepo repository.UserRepository,
	accessService AccessService,
	notifications NotificationService,
	cacheService CacheService,
	logService LogService,
) ShareService {
	return &shareServiceImpl{
		locationRepo:      locationRepo,
		itemRepo:          itemRepo,
		locationShareRepo: locationShareRepo,
		itemShareRepo:     itemShareRepo,
		userRepo:          userRepo,
		accessService:     accessService,
		notifications:     notifications,
		cacheService:      cacheService,
		logService:        logService,
	}
}

// checkGrant validates the common share preconditions: a valid role, a real
// grantee, and no self-share.
func (s *shareServiceImpl) checkGrant(actor *models.User, granteeID uuid.UUID, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid role %q", errs.ErrValidation, role)
	}
	if actor != nil && actor.ID == granteeID {
		return nil, errs.ErrSelfShare
	}
	grantee, err := s.userRepo.FindByID(granteeID)
	if err != nil {
		return nil, err
	}
	if grantee == nil {
		return nil, fmt.Errorf("%w: grantee user", errs.ErrNotFound)
	}
	return grantee, nil
}

func (s *shareServiceImpl) ShareLocation(actor *models.User, locationID, granteeID uuid.UUID, role models.Role) (*models.LocationShare, error) {
	location, err := s.locationRepo.FindByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, fmt.Errorf("%w: location", errs.ErrNotFound)
	}
	canEdit, err := s.accessService.CanEditLocation(actor, location)
	if err != nil {
		return nil, err
	}
	if !canEdit {
		return nil, errs.ErrPermissionDenied
	}
	if _, err := s.checkGrant(actor, granteeID, role); err != nil {
		return nil, err
	}

	share := &models.LocationShare{
		LocationID:  locationID,
		UserID:      granteeID,
		Role:        role,
		CreatedByID: actorID(actor),
	}
	if err := s.locationShareRepo.Upsert(share); err != nil {
		return nil, err
	}

	// Grantee's effective role changed, so their derived views are stale.
	s.invalidateLocationGrant(locationID, granteeID)

	if err := s.notifications.NotifyLocationShared(share, location, actor); err != nil {
		s.logService.Log.WithField("location", locationID).WithError(err).Warn("share notification failed")
	}
	return share, nil
}

func (s *shareServiceImpl) UnshareLocation(actor *models.User, locationID, granteeID uuid.UUID) error {
	location, err := s.locationRepo.FindByID(locationID)
	if err != nil {
		return err
	}
	if location == nil {
		return fmt.Errorf("%w: location", errs.ErrNotFound)
	}
	canEdit, err := s.accessService.CanEditLocation(actor, location)
	if err != nil {
		return err
	}
	if !canEdit {
		return errs.ErrPermissionDenied
	}
	deleted, err := s.locationShareRepo.DeletePair(locationID, granteeID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: share", errs.ErrNotFound)
	}

	s.invalidateLocationGrant(locationID, granteeID)

	if err := s.notifications.NotifyShareRevoked(granteeID, models.RelatedLocation, location.Name, actor); err != nil {
		s.logService.Log.WithField("location", locationID).WithError(err).Warn("revoke notification failed")
	}
	return nil
}

func (s *shareServiceImpl) ListLocationShares(actor *models.User, locationID uuid.UUID) ([]models.LocationShare, error) {
	location, err := s.locationRepo.FindByID(locationID)
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
	return s.locationShareRepo.FindByLocation(locationID)
}

func (s *shareServiceImpl) ShareItem(actor *models.User, itemID, granteeID uuid.UUID, role models.Role) (*models.ItemShare, error) {
	item, err := s.itemRepo.FindByID(itemID)
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
	if _, err := s.checkGrant(actor, granteeID, role); err != nil {
		return nil, err
	}

	share := &models.ItemShare{
		ItemID:      itemID,
		UserID:      granteeID,
		Role:        role,
		CreatedByID: actorID(actor),
	}
	if err := s.itemShareRepo.Upsert(share); err != nil {
		return nil, err
	}

	s.cacheService.InvalidateItem(itemID)
	s.cacheService.InvalidateUser(granteeID)

	if err := s.notifications.NotifyItemShared(share, item, actor); err != nil {
		s.logService.Log.WithField("item", itemID).WithError(err).Warn("share notification failed")
	}
	return share, nil
}

func (s *shareServiceImpl) UnshareItem(actor *models.User, itemID, granteeID uuid.UUID) error {
	item, err := s.itemRepo.FindByID(itemID)
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
	deleted, err := s.itemShareRepo.DeletePair(itemID, granteeID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: share", errs.ErrNotFound)
	}

	s.cacheService.InvalidateItem(itemID)
	s.cacheService.InvalidateUser(granteeID)

	if err := s.notifications.NotifyShareRevoked(granteeID, models.RelatedItem, item.Name, actor); err != nil {
		s.logService.Log.WithField("item", itemID).WithError(err).Warn("revoke notification failed")
	}
	return nil
}

func (s *shareServiceImpl) ListItemShares(actor *models.User, itemID uuid.UUID) ([]models.ItemShare, error) {
	item, err := s.itemRepo.FindByID(itemID)
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
	return s.itemShareRepo.FindByItem(itemID)
}

// invalidateLocationGrant drops the location's cached views, the grantee's
// user-scoped entries and the per-item entries of items inside the location,
// whose serialized user_role depends on the grant.
func (s *shareServiceImpl) invalidateLocationGrant(locationID, granteeID uuid.UUID) {
	s.cacheService.InvalidateLocation(locationID)
	s.cacheService.InvalidateUser(granteeID)
	itemIDs, err := s.itemRepo.FindIDsInLocations([]uuid.UUID{locationID})
	if err != nil {
		s.logService.Log.WithField("location", locationID).WithError(err).Warn("item invalidation lookup failed")
		return
	}
	for _, itemID := range itemIDs {
		s.cacheService.InvalidateItem(itemID)
	}
}

func actorID(actor *models.User) *uuid.UUID {
	if actor == nil {
		return nil
	}
	id := actor.ID
	return &id
}
