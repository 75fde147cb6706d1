package services

import (
	"Stash/internal/models"
	"Stash/internal/repository"

	"github.com/google/uuid"
)

// AccessService resolves a user's effective role on locations and items and
// computes the bulk accessible-ID sets used to scope every list query.
//
// The single-resource resolver and the bulk index must never disagree: for
// any user U and resource R, R.id is in AccessibleIDs(U) exactly when
// CanView(U, R) is true.
type AccessService interface {
	RoleOnLocation(user *models.User, location *models.Location) (models.Role, error)
	RoleOnItem(user *models.User, item *models.Item) (models.Role, error)

	CanViewLocation(user *models.User, location *models.Location) (bool, error)
	CanEditLocation(user *models.User, location *models.Location) (bool, error)
	CanViewItem(user *models.User, item *models.Item) (bool, error)
	CanEditItem(user *models.User, item *models.Item) (bool, error)

	AccessibleLocationIDs(user *models.User) ([]uuid.UUID, error)
	AccessibleItemIDs(user *models.User) ([]uuid.UUID, error)
}

type accessServiceImpl struct {
	locationRepo      repository.LocationRepository
	itemRepo          repository.ItemRepository
	locationShareRepo repository.LocationShareRepository
	itemShareRepo     repository.ItemShareRepository
}

func NewAccessService(
	locationRepo repository.LocationRepository,
	itemRepo repository.ItemRepository,
	locationShareRepo repository.LocationShareRepository,
	itemShareRepo repository.ItemShareRepository,
) AccessService {
	return &accessServiceImpl{
		locationRepo:      locationRepo,
		itemRepo:          itemRepo,
		locationShareRepo: locationShareRepo,
		itemShareRepo:     itemShareRepo,
	}
}

// RoleOnLocation checks, in order: superuser, ownership, direct share.
// Absence of a share is not an error; it resolves to RoleNone.
func (s *accessServiceImpl) RoleOnLocation(user *models.User, location *models.Location) (models.Role, error) {
	if !user.IsAuthenticated() || location == nil {
		return models.RoleNone, nil
	}
	if user.IsSuperuser {
		return models.RoleOwner, nil
	}
	if location.OwnerID != nil && *location.OwnerID == user.ID {
		return models.RoleOwner, nil
	}
	share, err := s.locationShareRepo.FindPair(location.ID, user.ID)
	if err != nil {
		return models.RoleNone, err
	}
	if share != nil {
		return share.Role, nil
	}
	return models.RoleNone, nil
}

// RoleOnItem checks superuser, ownership, then a direct item share. A direct
// share short-circuits the fallback: only when none exists does access flow
// down from the containing location.
func (s *accessServiceImpl) RoleOnItem(user *models.User, item *models.Item) (models.Role, error) {
	if !user.IsAuthenticated() || item == nil {
		return models.RoleNone, nil
	}
	if user.IsSuperuser {
		return models.RoleOwner, nil
	}
	if item.OwnerID != nil && *item.OwnerID == user.ID {
		return models.RoleOwner, nil
	}
	share, err := s.itemShareRepo.FindPair(item.ID, user.ID)
	if err != nil {
		return models.RoleNone, err
	}
	if share != nil {
		return share.Role, nil
	}
	if item.LocationID != nil {
		location, err := s.locationRepo.FindByID(*item.LocationID)
		if err != nil {
			return models.RoleNone, err
		}
		return s.RoleOnLocation(user, location)
	}
	return models.RoleNone, nil
}

func (s *accessServiceImpl) CanViewLocation(user *models.User, location *models.Location) (bool, error) {
	role, err := s.RoleOnLocation(user, location)
	return role.CanView(), err
}

func (s *accessServiceImpl) CanEditLocation(user *models.User, location *models.Location) (bool, error) {
	role, err := s.RoleOnLocation(user, location)
	return role.CanEdit(), err
}

func (s *accessServiceImpl) CanViewItem(user *models.User, item *models.Item) (bool, error) {
	role, err := s.RoleOnItem(user, item)
	return role.CanView(), err
}

func (s *accessServiceImpl) CanEditItem(user *models.User, item *models.Item) (bool, error) {
	role, err := s.RoleOnItem(user, item)
	return role.CanEdit(), err
}

// AccessibleLocationIDs unions owned and shared location IDs, each loaded in
// a single bulk query.
func (s *accessServiceImpl) AccessibleLocationIDs(user *models.User) ([]uuid.UUID, error) {
	if !user.IsAuthenticated() {
		return nil, nil
	}
	if user.IsSuperuser {
		return s.locationRepo.FindAllIDs()
	}
	owned, err := s.locationRepo.FindOwnedIDs(user.ID)
	if err != nil {
		return nil, err
	}
	shared, err := s.locationShareRepo.FindLocationIDsForUser(user.ID)
	if err != nil {
		return nil, err
	}
	return unionIDs(owned, shared), nil
}

// AccessibleItemIDs unions owned items, directly shared items, and items
// contained in any accessible location. The third term gives items
// transitive visibility through a shared containing location.
func (s *accessServiceImpl) AccessibleItemIDs(user *models.User) ([]uuid.UUID, error) {
	if !user.IsAuthenticated() {
		return nil, nil
	}
	if user.IsSuperuser {
		return s.itemRepo.FindAllIDs()
	}
	owned, err := s.itemRepo.FindOwnedIDs(user.ID)
	if err != nil {
		return nil, err
	}
	shared, err := s.itemShareRepo.FindItemIDsForUser(user.ID)
	if err != nil {
		return nil, err
	}
	locationIDs, err := s.AccessibleLocationIDs(user)
	if err != nil {
		return nil, err
	}
	viaLocation, err := s.itemRepo.FindIDsInLocations(locationIDs)
	if err != nil {
		return nil, err
	}
	return unionIDs(owned, shared, viaLocation), nil
}

func unionIDs(sets ...[]uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var union []uuid.UUID
	for _, set := range sets {
		for _, id := range set {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}
	return union
}
