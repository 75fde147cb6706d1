package services

import (
	"Stash/internal/config"
	"Stash/internal/repository"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor prunes read notifications and stale analytics events on a cron
// schedule. Retention windows come from the clean section of the config.
type Janitor struct {
	notificationRepo repository.NotificationRepository
	analyticsRepo    repository.AnalyticsRepository
	configuration    *config.Configuration
	logService       LogService
	cleaning         bool
	mutex            sync.Mutex
	cron             *cron.Cron
}

func NewJanitorService(
	notificationRepo repository.NotificationRepository,
	analyticsRepo repository.AnalyticsRepository,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		notificationRepo: notificationRepo,
		analyticsRepo:    analyticsRepo,
		logService:       logService,
		configuration:    configuration,
		cleaning:         false,
		mutex:            sync.Mutex{},
		cron:             cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	j.logService.Log.Debug("starting cleaning job")
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return
	}
	j.mutex.Unlock()

	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(false)
	})

	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	if !j.cleaning {
		return
	}

	j.cron.Stop()

	j.cleaning = false
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) startClean(forced bool) {
	var logFields logrus.Fields
	if !forced {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "start",
			"cron":   j.configuration.Server.CleanConfig.Schedule,
		}
	} else {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "forced",
		}
	}
	j.logService.Log.WithFields(logFields).Debug("cleaning job running")

	notifications := j.pruneNotifications()
	events := j.pruneAnalytics()

	if notifications > 0 || events > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":           "clean",
			"status":        "success",
			"notifications": notifications,
			"events":        events,
		}).Info("cleaning job finished")
	}
}

func (j *Janitor) pruneNotifications() int64 {
	days := j.configuration.Server.CleanConfig.NotificationRetentionDays
	if days <= 0 {
		return 0
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	deleted, err := j.notificationRepo.DeleteReadBefore(cutoff)
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to prune notifications")
		return 0
	}
	return deleted
}

func (j *Janitor) pruneAnalytics() int64 {
	days := j.configuration.Server.CleanConfig.AnalyticsRetentionDays
	if days <= 0 {
		return 0
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	deleted, err := j.analyticsRepo.DeleteBefore(cutoff)
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to prune analytics events")
		return 0
	}
	return deleted
}
