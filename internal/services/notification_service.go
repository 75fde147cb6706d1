package services

import (
	"Stash/internal/models"
	"Stash/internal/repository"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type NotificationService interface {
	Create(userID uuid.UUID, notificationType models.NotificationType, message string,
		relatedType *models.RelatedType, relatedID *uuid.UUID, metadata map[string]any) (*models.Notification, error)
	List(userID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error)
	UnreadCount(userID uuid.UUID) (int64, error)
	MarkRead(userID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkAllRead(userID uuid.UUID) (int64, error)

	NotifyLocationShared(share *models.LocationShare, location *models.Location, sharedBy *models.User) error
	NotifyItemShared(share *models.ItemShare, item *models.Item, sharedBy *models.User) error
	NotifyShareRevoked(userID uuid.UUID, relatedType models.RelatedType, resourceName string, revokedBy *models.User) error
	NotifyItemCreated(item *models.Item, location *models.Location, shareUserIDs []uuid.UUID, createdBy *models.User) error
	NotifyItemUpdated(item *models.Item, shareUserIDs []uuid.UUID, updatedBy *models.User) error
	NotifyItemMoved(item *models.Item, oldName, newName string, shareUserIDs []uuid.UUID, movedBy *models.User) error
	NotifyItemDeleted(item *models.Item, shareUserIDs []uuid.UUID, deletedBy *models.User) error
}

type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *notificationServiceImpl) Create(userID uuid.UUID, notificationType models.NotificationType, message string,
	relatedType *models.RelatedType, relatedID *uuid.UUID, metadata map[string]any) (*models.Notification, error) {
	var metadataJSON json.RawMessage
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, err
		}
		metadataJSON = raw
	}
	notification := &models.Notification{
		UserID:      userID,
		Type:        notificationType,
		Message:     message,
		RelatedType: relatedType,
		RelatedID:   relatedID,
		Metadata:    metadataJSON,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationServiceImpl) List(userID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error) {
	return s.notificationRepo.FindByUser(userID, unreadOnly, limit)
}

func (s *notificationServiceImpl) UnreadCount(userID uuid.UUID) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

func (s *notificationServiceImpl) MarkRead(userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	return s.notificationRepo.MarkRead(userID, ids)
}

func (s *notificationServiceImpl) MarkAllRead(userID uuid.UUID) (int64, error) {
	return s.notificationRepo.MarkAllRead(userID)
}

func (s *notificationServiceImpl) NotifyLocationShared(share *models.LocationShare, location *models.Location, sharedBy *models.User) error {
	relatedType := models.RelatedLocation
	_, err := s.Create(share.UserID, models.NotificationLocationShared,
		fmt.Sprintf("Location %q was shared with you (%s)", location.Name, share.Role),
		&relatedType, &location.ID,
		map[string]any{"role": share.Role, "shared_by": usernameOf(sharedBy)})
	return err
}

func (s *notificationServiceImpl) NotifyItemShared(share *models.ItemShare, item *models.Item, sharedBy *models.User) error {
	relatedType := models.RelatedItem
	_, err := s.Create(share.UserID, models.NotificationItemShared,
		fmt.Sprintf("Item %q was shared with you (%s)", item.Name, share.Role),
		&relatedType, &item.ID,
		map[string]any{"role": share.Role, "shared_by": usernameOf(sharedBy)})
	return err
}

func (s *notificationServiceImpl) NotifyShareRevoked(userID uuid.UUID, relatedType models.RelatedType, resourceName string, revokedBy *models.User) error {
	_, err := s.Create(userID, models.NotificationShareRevoked,
		fmt.Sprintf("Your access to %s %q was revoked", relatedType, resourceName),
		nil, nil,
		map[string]any{"object_type": relatedType, "object_name": resourceName, "revoked_by": usernameOf(revokedBy)})
	return err
}

// NotifyItemCreated notifies the item owner (when different from the actor)
// and every user the containing location is shared with, never the actor.
func (s *notificationServiceImpl) NotifyItemCreated(item *models.Item, location *models.Location, shareUserIDs []uuid.UUID, createdBy *models.User) error {
	relatedType := models.RelatedItem
	if item.OwnerID != nil && (createdBy == nil || *item.OwnerID != createdBy.ID) {
		if _, err := s.Create(*item.OwnerID, models.NotificationItemCreated,
			fmt.Sprintf("New item %q was added to your inventory", item.Name),
			&relatedType, &item.ID,
			map[string]any{"created_by": usernameOf(createdBy)}); err != nil {
			return err
		}
	}
	if location == nil {
		return nil
	}
	for _, userID := range shareUserIDs {
		if createdBy != nil && userID == createdBy.ID {
			continue
		}
		if _, err := s.Create(userID, models.NotificationItemCreated,
			fmt.Sprintf("New item %q was added to shared location %q", item.Name, location.Name),
			&relatedType, &item.ID,
			map[string]any{"location": location.Name, "created_by": usernameOf(createdBy)}); err != nil {
			return err
		}
	}
	return nil
}

func (s *notificationServiceImpl) NotifyItemUpdated(item *models.Item, shareUserIDs []uuid.UUID, updatedBy *models.User) error {
	relatedType := models.RelatedItem
	if item.OwnerID != nil && (updatedBy == nil || *item.OwnerID != updatedBy.ID) {
		if _, err := s.Create(*item.OwnerID, models.NotificationItemUpdated,
			fmt.Sprintf("Item %q was updated", item.Name),
			&relatedType, &item.ID,
			map[string]any{"updated_by": usernameOf(updatedBy)}); err != nil {
			return err
		}
	}
	for _, userID := range shareUserIDs {
		if updatedBy != nil && userID == updatedBy.ID {
			continue
		}
		if _, err := s.Create(userID, models.NotificationItemUpdated,
			fmt.Sprintf("Shared item %q was updated", item.Name),
			&relatedType, &item.ID,
			map[string]any{"updated_by": usernameOf(updatedBy)}); err != nil {
			return err
		}
	}
	return nil
}

func (s *notificationServiceImpl) NotifyItemMoved(item *models.Item, oldName, newName string, shareUserIDs []uuid.UUID, movedBy *models.User) error {
	relatedType := models.RelatedItem
	if item.OwnerID != nil && (movedBy == nil || *item.OwnerID != movedBy.ID) {
		if _, err := s.Create(*item.OwnerID, models.NotificationItemMoved,
			fmt.Sprintf("Item %q was moved from %q to %q", item.Name, oldName, newName),
			&relatedType, &item.ID,
			map[string]any{"old_location": oldName, "new_location": newName, "moved_by": usernameOf(movedBy)}); err != nil {
			return err
		}
	}
	for _, userID := range shareUserIDs {
		if movedBy != nil && userID == movedBy.ID {
			continue
		}
		if _, err := s.Create(userID, models.NotificationItemMoved,
			fmt.Sprintf("Item %q was moved from %q to %q", item.Name, oldName, newName),
			&relatedType, &item.ID,
			map[string]any{"old_location": oldName, "new_location": newName, "moved_by": usernameOf(movedBy)}); err != nil {
			return err
		}
	}
	return nil
}

// NotifyItemDeleted carries no related reference; the item row is gone by
// the time the notification is read.
func (s *notificationServiceImpl) NotifyItemDeleted(item *models.Item, shareUserIDs []uuid.UUID, deletedBy *models.User) error {
	metadata := map[string]any{"item_name": item.Name, "deleted_by": usernameOf(deletedBy)}
	if item.OwnerID != nil && (deletedBy == nil || *item.OwnerID != deletedBy.ID) {
		if _, err := s.Create(*item.OwnerID, models.NotificationItemDeleted,
			fmt.Sprintf("Item %q was deleted", item.Name),
			nil, nil, metadata); err != nil {
			return err
		}
	}
	for _, userID := range shareUserIDs {
		if deletedBy != nil && userID == deletedBy.ID {
			continue
		}
		if _, err := s.Create(userID, models.NotificationItemDeleted,
			fmt.Sprintf("Shared item %q was deleted", item.Name),
			nil, nil, metadata); err != nil {
			return err
		}
	}
	return nil
}

func usernameOf(user *models.User) string {
	if user == nil {
		return ""
	}
	return user.Username
}
