package cmd

import (
	"Stash/internal/handlers"
	"Stash/internal/services"
)

type Server struct {
	AccessService       services.AccessService
	ShareService        services.ShareService
	LocationService     services.LocationService
	ItemService         services.ItemService
	StatsService        services.StatsService
	TokenService        services.TokenService
	NotificationService services.NotificationService
	AnalyticsService    services.AnalyticsService
	TaxonomyService     services.TaxonomyService
	LogService          services.LogService
	JanitorService      *services.Janitor

	AuthHandler         *handlers.AuthHandler
	LocationHandler     *handlers.LocationHandler
	ItemHandler         *handlers.ItemHandler
	ShareHandler        *handlers.ShareHandler
	HomeHandler         *handlers.HomeHandler
	NotificationHandler *handlers.NotificationHandler
	TaxonomyHandler     *handlers.TaxonomyHandler
}

func NewServer(
	accessService services.AccessService,
	shareService services.ShareService,
	locationService services.LocationService,
	itemService services.ItemService,
	statsService services.StatsService,
	tokenService services.TokenService,
	notificationService services.NotificationService,
	analyticsService services.AnalyticsService,
	taxonomyService services.TaxonomyService,
	logService services.LogService,
	janitorService *services.Janitor,
	authHandler *handlers.AuthHandler,
	locationHandler *handlers.LocationHandler,
	itemHandler *handlers.ItemHandler,
	shareHandler *handlers.ShareHandler,
	homeHandler *handlers.HomeHandler,
	notificationHandler *handlers.NotificationHandler,
	taxonomyHandler *handlers.TaxonomyHandler,
) *Server {
	return &Server{
		AccessService:       accessService,
		ShareService:        shareService,
		LocationService:     locationService,
		ItemService:         itemService,
		StatsService:        statsService,
		TokenService:        tokenService,
		NotificationService: notificationService,
		AnalyticsService:    analyticsService,
		TaxonomyService:     taxonomyService,
		LogService:          logService,
		JanitorService:      janitorService,
		AuthHandler:         authHandler,
		LocationHandler:     locationHandler,
		ItemHandler:         itemHandler,
		ShareHandler:        shareHandler,
		HomeHandler:         homeHandler,
		NotificationHandler: notificationHandler,
		TaxonomyHandler:     taxonomyHandler,
	}
}
