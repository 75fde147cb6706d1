package services

import (
	"Stash/internal/errs"
	"Stash/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemService_CreateItemDefaults(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	attic := env.createLocation(t, "Attic", alice, nil, false)

	item, err := env.items.CreateItem(alice, ItemCreate{Name: "Lamp", LocationID: &attic.ID})
	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, models.ConditionGood, item.Condition)
	assert.Equal(t, alice.ID, *item.OwnerID)

	logs, err := env.items.ItemLogs(alice, item.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, models.ActionCreated, logs[0].Action)
}

func TestItemService_QuantityBounds(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)

	_, err := env.items.CreateItem(alice, ItemCreate{Name: "Lamp", Quantity: -1})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = env.items.CreateItem(alice, ItemCreate{Name: "Lamp", Quantity: models.MaxQuantity + 1})
	assert.ErrorIs(t, err, errs.ErrValidation)

	item, err := env.items.CreateItem(alice, ItemCreate{Name: "Lamp", Quantity: models.MaxQuantity})
	assert.NoError(t, err)

	tooMany := models.MaxQuantity + 1
	_, err = env.items.UpdateItem(alice, item.ID, ItemUpdate{Quantity: &tooMany})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestItemService_CreateInForeignLocationDenied(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	bob := env.createUser(t, "bob", false)
	attic := env.createLocation(t, "Attic", alice, nil, false)

	_, err := env.items.CreateItem(bob, ItemCreate{Name: "Lamp", LocationID: &attic.ID})
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestItemService_MoveWritesMovedLog(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	attic := env.createLocation(t, "Attic", alice, nil, false)
	office := env.createLocation(t, "Office", alice, nil, false)
	item := env.createItem(t, "Lamp", alice, attic)

	updated, err := env.items.UpdateItem(alice, item.ID, ItemUpdate{LocationID: &office.ID, SetLocation: true})
	assert.NoError(t, err)
	assert.Equal(t, office.ID, *updated.LocationID)

	logs, err := env.items.ItemLogs(alice, item.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, models.ActionMoved, logs[0].Action)
}

func TestItemService_UpdateWritesUpdatedLog(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	item := env.createItem(t, "Lamp", alice, nil)

	condition := models.ConditionDamaged
	_, err := env.items.UpdateItem(alice, item.ID, ItemUpdate{Condition: &condition})
	assert.NoError(t, err)

	logs, err := env.items.ItemLogs(alice, item.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, models.ActionUpdated, logs[0].Action)
}

func TestItemService_UpdateNotifiesShareUsers(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	bob := env.createUser(t, "bob", false)
	item := env.createItem(t, "Lamp", alice, nil)

	_, err := env.shares.ShareItem(alice, item.ID, bob.ID, models.RoleViewer)
	assert.NoError(t, err)

	name := "Desk lamp"
	_, err = env.items.UpdateItem(alice, item.ID, ItemUpdate{Name: &name})
	assert.NoError(t, err)

	notifications, err := env.notifications.List(bob.ID, false, 0)
	assert.NoError(t, err)
	var sawUpdate bool
	for _, n := range notifications {
		if n.Type == models.NotificationItemUpdated {
			sawUpdate = true
		}
	}
	assert.True(t, sawUpdate)

	// The actor never notifies themselves.
	own, err := env.notifications.List(alice.ID, false, 0)
	assert.NoError(t, err)
	assert.Empty(t, own)
}

func TestItemService_ViewerCannotEdit(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	bob := env.createUser(t, "bob", false)
	item := env.createItem(t, "Lamp", alice, nil)

	_, err := env.shares.ShareItem(alice, item.ID, bob.ID, models.RoleViewer)
	assert.NoError(t, err)

	name := "Sneaky rename"
	_, err = env.items.UpdateItem(bob, item.ID, ItemUpdate{Name: &name})
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	err = env.items.DeleteItem(bob, item.ID)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestItemService_DeleteItem(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	item := env.createItem(t, "Lamp", alice, nil)

	err := env.items.DeleteItem(alice, item.ID)
	assert.NoError(t, err)

	gone, err := env.itemRepo.FindByID(item.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestItemService_DeleteItemLogsAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	bob := env.createUser(t, "bob", false)
	item := env.createItem(t, "Lamp", alice, nil)

	_, err := env.shares.ShareItem(alice, item.ID, bob.ID, models.RoleViewer)
	assert.NoError(t, err)

	err = env.items.DeleteItem(alice, item.ID)
	assert.NoError(t, err)

	// The deleted entry outlives the item row.
	logs, err := env.itemLogRepo.FindByItem(item.ID, 10)
	assert.NoError(t, err)
	actions := make([]models.LogAction, 0, len(logs))
	for _, entry := range logs {
		actions = append(actions, entry.Action)
	}
	assert.Contains(t, actions, models.ActionDeleted)

	bobNotifications, err := env.notifRepo.FindByUser(bob.ID, false, 10)
	assert.NoError(t, err)
	types := make([]models.NotificationType, 0, len(bobNotifications))
	for _, notification := range bobNotifications {
		types = append(types, notification.Type)
	}
	assert.Contains(t, types, models.NotificationItemDeleted)

	// The actor is never notified about their own mutation.
	aliceNotifications, err := env.notifRepo.FindByUser(alice.ID, false, 10)
	assert.NoError(t, err)
	for _, notification := range aliceNotifications {
		assert.NotEqual(t, models.NotificationItemDeleted, notification.Type)
	}
}
