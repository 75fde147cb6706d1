//go:build wireinject
// +build wireinject

package main

import (
	"Stash/cmd"
	"Stash/database"
	"Stash/internal/config"
	"Stash/internal/handlers"
	"Stash/internal/repository"
	"Stash/internal/services"
	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("stash.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		repository.NewUserRepository,
		repository.NewLocationRepository,
		repository.NewItemRepository,
		repository.NewLocationShareRepository,
		repository.NewItemShareRepository,
		repository.NewCategoryRepository,
		repository.NewTagRepository,
		repository.NewItemLogRepository,
		repository.NewNotificationRepository,
		repository.NewAnalyticsRepository,
		services.NewLogService,
		services.NewCacheStore,
		services.NewCacheService,
		services.NewAccessService,
		services.NewNotificationService,
		services.NewShareService,
		services.NewLocationService,
		services.NewItemService,
		services.NewStatsService,
		services.NewTokenService,
		services.NewAnalyticsService,
		services.NewTaxonomyService,
		services.NewJanitorService,
		handlers.NewAuthHandler,
		handlers.NewLocationHandler,
		handlers.NewItemHandler,
		handlers.NewShareHandler,
		handlers.NewHomeHandler,
		handlers.NewNotificationHandler,
		handlers.NewTaxonomyHandler,
		Provider,
	)
	return nil, nil
}
