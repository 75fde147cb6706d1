package services

import (
	"Stash/internal/models"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccessService_RoleOnLocation_Owner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", false)
	stranger := env.createUser(t, "bob", false)
	attic := env.createLocation(t, "Attic", owner, nil, false)

	role, err := env.access.RoleOnLocation(owner, attic)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleOwner, role)

	role, err = env.access.RoleOnLocation(stranger, attic)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleNone, role)
}

func TestAccessService_RoleOnLocation_Superuser(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", false)
	admin := env.createUser(t, "admin", true)
	attic := env.createLocation(t, "Attic", owner, nil, false)

	role, err := env.access.RoleOnLocation(admin, attic)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleOwner, role)
}

func TestAccessService_RoleOnLocation_Share(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", false)
	viewer := env.createUser(t, "bob", false)
	attic := env.createLocation(t, "Attic", owner, nil, false)

	_, err := env.shares.ShareLocation(owner, attic.ID, viewer.ID, models.RoleViewer)
	assert.NoError(t, err)

	role, err := env.access.RoleOnLocation(viewer, attic)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleViewer, role)
	assert.True(t, role.CanView())
	assert.False(t, role.CanEdit())
}

func TestAccessService_RoleOnItem_DirectShareShortCircuits(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", false)
	bob := env.createUser(t, "bob", false)
	attic := env.createLocation(t, "Attic", owner, nil, false)
	item := env.createItem(t, "Lamp", owner, attic)

	// Location grants editor, but a direct viewer share on the item wins.
	_, err := env.shares.ShareLocation(owner, attic.ID, bob.ID, models.RoleEditor)
	assert.NoError(t, err)
	_, err = env.shares.ShareItem(owner, item.ID, bob.ID, models.RoleViewer)
	assert.NoError(t, err)

	role, err := env.access.RoleOnItem(bob, item)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleViewer, role)
}

func TestAccessService_RoleOnItem_InheritsLocationRole(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", false)
	bob := env.createUser(t, "bob", false)
	attic := env.createLocation(t, "Attic", owner, nil, false)
	item := env.createItem(t, "Lamp", owner, attic)

	_, err := env.shares.ShareLocation(owner, attic.ID, bob.ID, models.RoleEditor)
	assert.NoError(t, err)

	role, err := env.access.RoleOnItem(bob, item)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleEditor, role)
}

func TestAccessService_AtticBoxScenario(t *testing.T) {
	env := newTestEnv(t)
	userA := env.createUser(t, "a", false)
	userB := env.createUser(t, "b", false)
	userC := env.createUser(t, "c", false)

	attic := env.createLocation(t, "Attic", userA, nil, false)
	_, err := env.shares.ShareLocation(userA, attic.ID, userB.ID, models.RoleEditor)
	assert.NoError(t, err)

	// B creates "Box" in the attic.
	box, err := env.items.CreateItem(userB, ItemCreate{Name: "Box", LocationID: &attic.ID})
	assert.NoError(t, err)

	idsC, err := env.access.AccessibleItemIDs(userC)
	assert.NoError(t, err)
	assert.NotContains(t, idsC, box.ID)

	idsB, err := env.access.AccessibleItemIDs(userB)
	assert.NoError(t, err)
	assert.Contains(t, idsB, box.ID)

	// A owns the attic, so the box is visible and editable through it even
	// without an item-level grant.
	idsA, err := env.access.AccessibleItemIDs(userA)
	assert.NoError(t, err)
	assert.Contains(t, idsA, box.ID)

	canEdit, err := env.access.CanEditItem(userA, box)
	assert.NoError(t, err)
	assert.True(t, canEdit)
}

func TestAccessService_AnonymousSeesNothing(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", false)
	attic := env.createLocation(t, "Attic", owner, nil, false)
	env.createItem(t, "Lamp", owner, attic)

	ids, err := env.access.AccessibleItemIDs(nil)
	assert.NoError(t, err)
	assert.Empty(t, ids)

	role, err := env.access.RoleOnLocation(nil, attic)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleNone, role)
}

// The bulk index and the single-resource resolver must agree for every
// (user, resource) pair.
func TestAccessService_BulkMatchesSingleResolver(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", false)
	bob := env.createUser(t, "bob", false)
	carol := env.createUser(t, "carol", false)
	admin := env.createUser(t, "admin", true)

	attic := env.createLocation(t, "Attic", alice, nil, false)
	office := env.createLocation(t, "Office", bob, nil, false)
	shelf := env.createLocation(t, "Shelf", bob, office, false)
	crate := env.createLocation(t, "Crate", carol, attic, true)

	lamp := env.createItem(t, "Lamp", alice, attic)
	desk := env.createItem(t, "Desk", bob, office)
	pens := env.createItem(t, "Pens", bob, shelf)
	loose := env.createItem(t, "Loose", carol, nil)

	_, err := env.shares.ShareLocation(alice, attic.ID, bob.ID, models.RoleViewer)
	assert.NoError(t, err)
	_, err = env.shares.ShareItem(bob, desk.ID, carol.ID, models.RoleEditor)
	assert.NoError(t, err)
	_, err = env.shares.ShareLocation(bob, shelf.ID, alice.ID, models.RoleEditor)
	assert.NoError(t, err)

	users := []*models.User{alice, bob, carol, admin, nil}
	locations := []*models.Location{attic, office, shelf, crate}
	items := []*models.Item{lamp, desk, pens, loose}

	for _, user := range users {
		locationIDs, err := env.access.AccessibleLocationIDs(user)
		assert.NoError(t, err)
		itemIDs, err := env.access.AccessibleItemIDs(user)
		assert.NoError(t, err)

		locationSet := make(map[uuid.UUID]bool)
		for _, id := range locationIDs {
			locationSet[id] = true
		}
		itemSet := make(map[uuid.UUID]bool)
		for _, id := range itemIDs {
			itemSet[id] = true
		}

		for _, location := range locations {
			canView, err := env.access.CanViewLocation(user, location)
			assert.NoError(t, err)
			assert.Equal(t, canView, locationSet[location.ID],
				"location %s visibility mismatch", location.Name)
		}
		for _, item := range items {
			canView, err := env.access.CanViewItem(user, item)
			assert.NoError(t, err)
			assert.Equal(t, canView, itemSet[item.ID],
				"item %s visibility mismatch", item.Name)
		}
	}
}
