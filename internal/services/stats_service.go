package services

import (
	"Stash/internal/errs"
	"Stash/internal/models"
	"Stash/internal/repository"
	"fmt"

	"github.com/google/uuid"
)

// HomeStats is the per-user dashboard aggregate. Everything is computed over
// the viewer's accessible sets, never the whole catalog.
type HomeStats struct {
	LocationsCount   int64                       `json:"locations_count"`
	ItemsCount       int64                       `json:"items_count"`
	BoxesCount       int64                       `json:"boxes_count"`
	RecentItems      []models.Item               `json:"recent_items"`
	ItemsByCondition []repository.ConditionCount `json:"items_by_condition"`
}

type SearchResults struct {
	Query     string            `json:"query"`
	Locations []models.Location `json:"locations"`
	Items     []models.Item     `json:"items"`
}

type RoomView struct {
	RoomType  models.RoomType   `json:"room_type"`
	Locations []models.Location `json:"locations"`
	Items     []models.Item     `json:"items"`
}

type StatsService interface {
	HomeStats(actor *models.User) (*HomeStats, error)
	Search(actor *models.User, query string) (*SearchResults, error)
	RoomView(actor *models.User, roomType models.RoomType) (*RoomView, error)
}

type statsServiceImpl struct {
	locationRepo  repository.LocationRepository
	itemRepo      repository.ItemRepository
	accessService AccessService
	cacheService  CacheService
}

func NewStatsService(
	locationRepo repository.LocationRepository,
	itemRepo repository.ItemRepository,
	accessService AccessService,
	cacheService CacheService,
) StatsService {
	return &statsServiceImpl{
		locationRepo:  locationRepo,
		itemRepo:      itemRepo,
		accessService: accessService,
		cacheService:  cacheService,
	}
}

const searchLimit = 10

func (s *statsServiceImpl) HomeStats(actor *models.User) (*HomeStats, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.ErrPermissionDenied
	}
	key := s.cacheService.Key(CacheKeyStats, "home", actor.ID.String())
	stats := &HomeStats{}
	err := s.cacheService.GetOrCompute(key, CacheTTLStats, stats, func() error {
		locationIDs, err := s.accessService.AccessibleLocationIDs(actor)
		if err != nil {
			return err
		}
		itemIDs, err := s.accessService.AccessibleItemIDs(actor)
		if err != nil {
			return err
		}
		if stats.LocationsCount, err = s.locationRepo.CountIn(locationIDs); err != nil {
			return err
		}
		if stats.BoxesCount, err = s.locationRepo.CountBoxesIn(locationIDs); err != nil {
			return err
		}
		if stats.ItemsCount, err = s.itemRepo.CountIn(itemIDs); err != nil {
			return err
		}
		if stats.RecentItems, err = s.itemRepo.FindRecent(itemIDs, 5); err != nil {
			return err
		}
		if stats.ItemsByCondition, err = s.itemRepo.CountByCondition(itemIDs); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *statsServiceImpl) Search(actor *models.User, query string) (*SearchResults, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.ErrPermissionDenied
	}
	results := &SearchResults{Query: query}
	if query == "" {
		return results, nil
	}
	locationIDs, err := s.accessService.AccessibleLocationIDs(actor)
	if err != nil {
		return nil, err
	}
	itemIDs, err := s.accessService.AccessibleItemIDs(actor)
	if err != nil {
		return nil, err
	}
	if len(locationIDs) > 0 {
		if results.Locations, err = s.locationRepo.SearchByName(query, locationIDs, searchLimit); err != nil {
			return nil, err
		}
	}
	if len(itemIDs) > 0 {
		if results.Items, err = s.itemRepo.SearchByText(query, itemIDs, searchLimit); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *statsServiceImpl) RoomView(actor *models.User, roomType models.RoomType) (*RoomView, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.ErrPermissionDenied
	}
	if !roomType.Valid() {
		return nil, fmt.Errorf("%w: room type", errs.ErrNotFound)
	}
	locationIDs, err := s.accessService.AccessibleLocationIDs(actor)
	if err != nil {
		return nil, err
	}
	view := &RoomView{RoomType: roomType}
	if len(locationIDs) == 0 {
		return view, nil
	}
	if view.Locations, err = s.locationRepo.FindByRoomType(roomType, locationIDs); err != nil {
		return nil, err
	}
	roomLocationIDs := make([]uuid.UUID, 0, len(view.Locations))
	for _, location := range view.Locations {
		roomLocationIDs = append(roomLocationIDs, location.ID)
	}
	if len(roomLocationIDs) == 0 {
		return view, nil
	}
	// Items in an accessible location are accessible by the transitive rule,
	// so scoping by the room's locations is enough here.
	itemIDs, err := s.itemRepo.FindIDsInLocations(roomLocationIDs)
	if err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return view, nil
	}
	if view.Items, err = s.itemRepo.FindAccessible(itemIDs, repository.ItemFilter{}); err != nil {
		return nil, err
	}
	return view, nil
}
