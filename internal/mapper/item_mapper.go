package mapper

import (
	"Stash/internal/dto"
	"Stash/internal/models"
	"Stash/internal/services"
)

func ToItemGetDTO(item *models.Item, userRole models.Role) *dto.ItemGetDTO {
	itemDTO := &dto.ItemGetDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		Condition:   string(item.Condition),
		LocationID:  item.LocationID,
		CategoryID:  item.CategoryID,
		OwnerID:     item.OwnerID,
		UserRole:    string(userRole),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if item.Location != nil {
		itemDTO.LocationName = item.Location.Name
	}
	if len(item.Tags) > 0 {
		itemDTO.Tags = make([]dto.TagGetDTO, 0, len(item.Tags))
		for _, tag := range item.Tags {
			itemDTO.Tags = append(itemDTO.Tags, dto.TagGetDTO{ID: tag.ID, Name: tag.Name, Color: tag.Color})
		}
	}
	return itemDTO
}

func ToItemDetailDTO(detail *services.ItemDetail) *dto.ItemGetDTO {
	itemDTO := ToItemGetDTO(&detail.Item, detail.UserRole)
	itemDTO.Logs = ToItemLogDTOs(detail.Logs)
	return itemDTO
}

func ToItemLogDTOs(logs []models.ItemLog) []dto.ItemLogDTO {
	logDTOs := make([]dto.ItemLogDTO, 0, len(logs))
	for _, log := range logs {
		logDTOs = append(logDTOs, dto.ItemLogDTO{
			ID:        log.ID,
			Action:    string(log.Action),
			Details:   log.Details,
			UserID:    log.UserID,
			CreatedAt: log.CreatedAt,
		})
	}
	return logDTOs
}

func ToItemsGetDTOs(items []models.Item) []*dto.ItemGetDTO {
	itemDTOs := make([]*dto.ItemGetDTO, 0, len(items))
	for i := range items {
		itemDTOs = append(itemDTOs, ToItemGetDTO(&items[i], models.RoleNone))
	}
	return itemDTOs
}
