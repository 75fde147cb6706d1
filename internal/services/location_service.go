package services

import (
	"Stash/internal/errs"
	"Stash/internal/models"
	"Stash/internal/repository"
	"fmt"

	"github.com/google/uuid"
)

// maxAncestorWalk bounds the hierarchy walk against corrupt data. Cycles are
// detected exactly with a visited set, so legitimately deep chains below
// this bound are unaffected.
const maxAncestorWalk = 100

type LocationCreate struct {
	Name     string
	RoomType *models.RoomType
	ParentID *uuid.UUID
	IsBox    bool
}

type LocationUpdate struct {
	Name      *string
	RoomType  *models.RoomType
	ParentID  *uuid.UUID
	SetParent bool
	IsBox     *bool
}

// LocationDetail is the per-viewer detail view: listings depend on the
// viewer through the serialized role.
type LocationDetail struct {
	Location models.Location   `json:"location"`
	Children []models.Location `json:"children"`
	Items    []models.Item     `json:"items"`
	UserRole models.Role       `json:"user_role"`
}

type LocationService interface {
	CreateLocation(actor *models.User, params LocationCreate) (*models.Location, error)
	GetLocation(actor *models.User, id uuid.UUID) (*LocationDetail, error)
	UpdateLocation(actor *models.User, id uuid.UUID, params LocationUpdate) (*models.Location, error)
	DeleteLocation(actor *models.User, id uuid.UUID) error
	ListLocations(actor *models.User, filter repository.LocationFilter) ([]models.Location, error)
	Breadcrumbs(actor *models.User, id uuid.UUID) ([]models.Location, error)
}

type locationServiceImpl struct {
	locationRepo  repository.LocationRepository
	itemRepo      repository.ItemRepository
	accessService AccessService
	cacheService  CacheService
}

func NewLocationService(
	locationRepo repository.LocationRepository,
	itemRepo repository.ItemRepository,
	accessService AccessService,
	cacheService CacheService,
) LocationService {
	return &locationServiceImpl{
		locationRepo:  locationRepo,
		itemRepo:      itemRepo,
		accessService: accessService,
		cacheService:  cacheService,
	}
}

func (s *locationServiceImpl) CreateLocation(actor *models.User, params LocationCreate) (*models.Location, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.ErrPermissionDenied
	}
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	if params.RoomType != nil && !params.RoomType.Valid() {
		return nil, fmt.Errorf("%w: invalid room type %q", errs.ErrValidation, *params.RoomType)
	}
	if params.ParentID != nil {
		parent, err := s.locationRepo.FindByID(*params.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: parent location", errs.ErrNotFound)
		}
		canView, err := s.accessService.CanViewLocation(actor, parent)
		if err != nil {
			return nil, err
		}
		if !canView {
			return nil, errs.ErrPermissionDenied
		}
	}
	ownerID := actor.ID
	location := &models.Location{
		Name:     params.Name,
		RoomType: params.RoomType,
		ParentID: params.ParentID,
		IsBox:    params.IsBox,
		OwnerID:  &ownerID,
	}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, err
	}
	s.invalidateAround(location)
	s.cacheService.InvalidateUser(actor.ID)
	return location, nil
}

func (s *locationServiceImpl) GetLocation(actor *models.User, id uuid.UUID) (*LocationDetail, error) {
	location, err := s.locationRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, fmt.Errorf("%w: location", errs.ErrNotFound)
	}
	role, err := s.accessService.RoleOnLocation(actor, location)
	if err != nil {
		return nil, err
	}
	if !role.CanView() {
		return nil, errs.ErrPermissionDenied
	}

	// Listing is user-scoped: the serialized role differs per viewer.
	key := s.cacheService.Key(CacheKeyLocation, id.String(), "detail", CacheKeyUser, actor.ID.String())
	detail := &LocationDetail{}
	err = s.cacheService.GetOrCompute(key, CacheTTLMedium, detail, func() error {
		children, err := s.locationRepo.FindChildren(id)
		if err != nil {
			return err
		}
		items, err := s.itemRepo.FindByLocation(id)
		if err != nil {
			return err
		}
		detail.Location = *location
		detail.Children = children
		detail.Items = items
		detail.UserRole = role
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *locationServiceImpl) UpdateLocation(actor *models.User, id uuid.UUID, params LocationUpdate) (*models.Location, error) {
	location, err := s.locationRepo.FindByID(id)
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

	oldParentID := location.ParentID
	if params.Name != nil {
		if *params.Name == "" {
			return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
		}
		location.Name = *params.Name
	}
	if params.RoomType != nil {
		if !params.RoomType.Valid() {
			return nil, fmt.Errorf("%w: invalid room type %q", errs.ErrValidation, *params.RoomType)
		}
		location.RoomType = params.RoomType
	}
	if params.SetParent {
		location.ParentID = params.ParentID
	}
	if params.IsBox != nil {
		location.IsBox = *params.IsBox
	}

	// Runs on every save that could alter the parent, not only explicit
	// re-parenting.
	if err := s.validateHierarchy(location); err != nil {
		return nil, err
	}
	if err := s.locationRepo.Update(location); err != nil {
		return nil, err
	}

	s.invalidateAround(location)
	if oldParentID != nil && (location.ParentID == nil || *oldParentID != *location.ParentID) {
		s.cacheService.InvalidateLocation(*oldParentID)
	}
	if location.OwnerID != nil {
		s.cacheService.InvalidateUser(*location.OwnerID)
	}
	return location, nil
}

func (s *locationServiceImpl) DeleteLocation(actor *models.User, id uuid.UUID) error {
	location, err := s.locationRepo.FindByID(id)
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
	if err := s.locationRepo.DeleteTree(id); err != nil {
		return err
	}
	s.invalidateAround(location)
	if location.OwnerID != nil {
		s.cacheService.InvalidateUser(*location.OwnerID)
	}
	return nil
}

func (s *locationServiceImpl) ListLocations(actor *models.User, filter repository.LocationFilter) ([]models.Location, error) {
	ids, err := s.accessService.AccessibleLocationIDs(actor)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.locationRepo.FindAccessible(ids, filter)
}

// Breadcrumbs returns the path from the root to the location, inclusive.
func (s *locationServiceImpl) Breadcrumbs(actor *models.User, id uuid.UUID) ([]models.Location, error) {
	location, err := s.locationRepo.FindByID(id)
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

	var path []models.Location
	visited := map[uuid.UUID]bool{}
	current := location
	for current != nil && len(path) < maxAncestorWalk {
		if visited[current.ID] {
			return nil, errs.ErrCycleDetected
		}
		visited[current.ID] = true
		path = append([]models.Location{*current}, path...)
		if current.ParentID == nil {
			break
		}
		current, err = s.locationRepo.FindByID(*current.ParentID)
		if err != nil {
			return nil, err
		}
	}
	return path, nil
}

// validateHierarchy walks the candidate ancestor chain and rejects the write
// when the location would become its own ancestor. A visited set makes the
// detection exact regardless of hierarchy depth.
func (s *locationServiceImpl) validateHierarchy(location *models.Location) error {
	if location.ParentID == nil {
		return nil
	}
	visited := map[uuid.UUID]bool{location.ID: true}
	currentID := location.ParentID
	for hops := 0; currentID != nil && hops < maxAncestorWalk; hops++ {
		if visited[*currentID] {
			return errs.ErrCycleDetected
		}
		visited[*currentID] = true
		ancestor, err := s.locationRepo.FindByID(*currentID)
		if err != nil {
			return err
		}
		if ancestor == nil {
			return fmt.Errorf("%w: parent location", errs.ErrNotFound)
		}
		currentID = ancestor.ParentID
	}
	return nil
}

func (s *locationServiceImpl) invalidateAround(location *models.Location) {
	s.cacheService.InvalidateLocation(location.ID)
	if location.ParentID != nil {
		// The parent's children listing changed.
		s.cacheService.InvalidateLocation(*location.ParentID)
	}
}
