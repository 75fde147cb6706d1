package services

import (
	"Stash/database"
	"Stash/internal/cache"
	"Stash/internal/models"
	"Stash/internal/repository"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func quietLogService() LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return LogService{Log: log}
}

// testEnv wires the real service stack over an in-memory database and an
// in-memory cache.
type testEnv struct {
	db            *gorm.DB
	store         cache.Cache
	userRepo      repository.UserRepository
	locationRepo  repository.LocationRepository
	itemRepo      repository.ItemRepository
	locShareRepo  repository.LocationShareRepository
	itemShareRepo repository.ItemShareRepository
	notifRepo     repository.NotificationRepository
	itemLogRepo   repository.ItemLogRepository
	analyticsRepo repository.AnalyticsRepository
	access        AccessService
	cacheService  CacheService
	notifications NotificationService
	shares        ShareService
	locations     LocationService
	items         ItemService
	stats         StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)

	env := &testEnv{
		db:            db,
		store:         cache.NewMemoryCache(),
		userRepo:      repository.NewUserRepository(db),
		locationRepo:  repository.NewLocationRepository(db),
		itemRepo:      repository.NewItemRepository(db),
		locShareRepo:  repository.NewLocationShareRepository(db),
		itemShareRepo: repository.NewItemShareRepository(db),
		notifRepo:     repository.NewNotificationRepository(db),
		itemLogRepo:   repository.NewItemLogRepository(db),
		analyticsRepo: repository.NewAnalyticsRepository(db),
	}
	env.access = NewAccessService(env.locationRepo, env.itemRepo, env.locShareRepo, env.itemShareRepo)
	env.cacheService = NewCacheService(env.store)
	env.notifications = NewNotificationService(env.notifRepo)
	env.shares = NewShareService(
		env.locationRepo, env.itemRepo, env.locShareRepo, env.itemShareRepo,
		env.userRepo, env.access, env.notifications, env.cacheService, quietLogService(),
	)
	env.locations = NewLocationService(env.locationRepo, env.itemRepo, env.access, env.cacheService)
	env.items = NewItemService(
		env.itemRepo, env.locationRepo,
		repository.NewTagRepository(db), repository.NewCategoryRepository(db),
		env.itemLogRepo, env.locShareRepo, env.itemShareRepo,
		env.access, env.notifications, env.cacheService, quietLogService(),
	)
	env.stats = NewStatsService(env.locationRepo, env.itemRepo, env.access, env.cacheService)
	return env
}

func (env *testEnv) createUser(t *testing.T, username string, superuser bool) *models.User {
	t.Helper()
	user := &models.User{Username: username, IsSuperuser: superuser, IsActive: true}
	if err := env.userRepo.Create(user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func (env *testEnv) createLocation(t *testing.T, name string, owner *models.User, parent *models.Location, isBox bool) *models.Location {
	t.Helper()
	location := &models.Location{Name: name, IsBox: isBox}
	if owner != nil {
		location.OwnerID = &owner.ID
	}
	if parent != nil {
		location.ParentID = &parent.ID
	}
	if err := env.locationRepo.Create(location); err != nil {
		t.Fatalf("create location %s: %v", name, err)
	}
	return location
}

func (env *testEnv) createItem(t *testing.T, name string, owner *models.User, location *models.Location) *models.Item {
	t.Helper()
	item := &models.Item{Name: name, Quantity: 1, Condition: models.ConditionGood}
	if owner != nil {
		item.OwnerID = &owner.ID
	}
	if location != nil {
		item.LocationID = &location.ID
	}
	if err := env.itemRepo.Create(item); err != nil {
		t.Fatalf("create item %s: %v", name, err)
	}
	return item
}
