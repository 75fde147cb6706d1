package mapper

import (
	"Stash/internal/dto"
	"Stash/internal/models"
	"Stash/internal/services"
)

func ToLocationGetDTO(location *models.Location, userRole models.Role) *dto.LocationGetDTO {
	locationDTO := &dto.LocationGetDTO{
		ID:        location.ID,
		Name:      location.Name,
		ParentID:  location.ParentID,
		IsBox:     location.IsBox,
		OwnerID:   location.OwnerID,
		UserRole:  string(userRole),
		CreatedAt: location.CreatedAt,
	}
	if location.RoomType != nil {
		locationDTO.RoomType = string(*location.RoomType)
	}
	return locationDTO
}

func ToLocationDetailDTO(detail *services.LocationDetail) *dto.LocationGetDTO {
	locationDTO := ToLocationGetDTO(&detail.Location, detail.UserRole)
	locationDTO.Children = make([]*dto.LocationGetDTO, 0, len(detail.Children))
	for i := range detail.Children {
		locationDTO.Children = append(locationDTO.Children, ToLocationGetDTO(&detail.Children[i], models.RoleNone))
	}
	locationDTO.Items = make([]*dto.ItemGetDTO, 0, len(detail.Items))
	for i := range detail.Items {
		locationDTO.Items = append(locationDTO.Items, ToItemGetDTO(&detail.Items[i], models.RoleNone))
	}
	return locationDTO
}

func ToLocationsGetDTOs(locations []models.Location) []*dto.LocationGetDTO {
	locationDTOs := make([]*dto.LocationGetDTO, 0, len(locations))
	for i := range locations {
		locationDTOs = append(locationDTOs, ToLocationGetDTO(&locations[i], models.RoleNone))
	}
	return locationDTOs
}
