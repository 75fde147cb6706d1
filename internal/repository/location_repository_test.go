package repository

import (
	"Stash/internal/models"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLocationRepository_FindAccessibleFilters(t *testing.T) {
	db := setupShareTestDB(t)
	repo := NewLocationRepository(db)
	owner, _, _ := seedShareFixture(t, db)

	office := models.RoomOffice
	attic := models.RoomAttic
	desk := &models.Location{Name: "Desk", RoomType: &office, OwnerID: &owner.ID}
	box := &models.Location{Name: "Moving Box", RoomType: &attic, IsBox: true, OwnerID: &owner.ID}
	assert.NoError(t, db.Create(desk).Error)
	assert.NoError(t, db.Create(box).Error)

	ids := []uuid.UUID{desk.ID, box.ID}

	locations, err := repo.FindAccessible(ids, LocationFilter{RoomType: "office"})
	assert.NoError(t, err)
	assert.Len(t, locations, 1)
	assert.Equal(t, "Desk", locations[0].Name)

	isBox := true
	locations, err = repo.FindAccessible(ids, LocationFilter{IsBox: &isBox})
	assert.NoError(t, err)
	assert.Len(t, locations, 1)
	assert.Equal(t, "Moving Box", locations[0].Name)

	locations, err = repo.FindAccessible(ids, LocationFilter{Search: "box"})
	assert.NoError(t, err)
	assert.Len(t, locations, 1)

	locations, err = repo.FindAccessible(nil, LocationFilter{})
	assert.NoError(t, err)
	assert.Empty(t, locations)
}

func TestLocationRepository_DeleteTree(t *testing.T) {
	db := setupShareTestDB(t)
	repo := NewLocationRepository(db)
	owner, grantee, root := seedShareFixture(t, db)

	shelf := &models.Location{Name: "Shelf", ParentID: &root.ID, OwnerID: &owner.ID}
	assert.NoError(t, db.Create(shelf).Error)
	bin := &models.Location{Name: "Bin", ParentID: &shelf.ID, IsBox: true, OwnerID: &owner.ID}
	assert.NoError(t, db.Create(bin).Error)

	item := &models.Item{Name: "Screwdriver", Quantity: 1, OwnerID: &owner.ID, LocationID: &bin.ID}
	assert.NoError(t, db.Create(item).Error)
	assert.NoError(t, db.Create(&models.LocationShare{
		LocationID: shelf.ID,
		UserID:     grantee.ID,
		Role:       models.RoleViewer,
	}).Error)

	assert.NoError(t, repo.DeleteTree(root.ID))

	var locationCount int64
	db.Model(&models.Location{}).Count(&locationCount)
	assert.Zero(t, locationCount)

	var shareCount int64
	db.Model(&models.LocationShare{}).Count(&shareCount)
	assert.Zero(t, shareCount)

	var orphan models.Item
	assert.NoError(t, db.First(&orphan, "id = ?", item.ID).Error)
	assert.Nil(t, orphan.LocationID)
}

func TestLocationRepository_FindOwnedIDs(t *testing.T) {
	db := setupShareTestDB(t)
	repo := NewLocationRepository(db)
	owner, grantee, root := seedShareFixture(t, db)

	mine := &models.Location{Name: "Workbench", OwnerID: &owner.ID}
	theirs := &models.Location{Name: "Closet", OwnerID: &grantee.ID}
	assert.NoError(t, db.Create(mine).Error)
	assert.NoError(t, db.Create(theirs).Error)

	ids, err := repo.FindOwnedIDs(owner.ID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{root.ID, mine.ID}, ids)
}
