package mapper

import (
	"Stash/internal/dto"
	"Stash/internal/models"
)

func ToLocationShareDTO(share *models.LocationShare) *dto.ShareGetDTO {
	shareDTO := &dto.ShareGetDTO{
		ID:         share.ID,
		ResourceID: share.LocationID,
		UserID:     share.UserID,
		Role:       string(share.Role),
		CreatedBy:  share.CreatedByID,
		CreatedAt:  share.CreatedAt,
	}
	if share.User != nil {
		shareDTO.Username = share.User.Username
	}
	return shareDTO
}

func ToLocationShareDTOs(shares []models.LocationShare) []*dto.ShareGetDTO {
	shareDTOs := make([]*dto.ShareGetDTO, 0, len(shares))
	for i := range shares {
		shareDTOs = append(shareDTOs, ToLocationShareDTO(&shares[i]))
	}
	return shareDTOs
}

func ToItemShareDTO(share *models.ItemShare) *dto.ShareGetDTO {
	shareDTO := &dto.ShareGetDTO{
		ID:         share.ID,
		ResourceID: share.ItemID,
		UserID:     share.UserID,
		Role:       string(share.Role),
		CreatedBy:  share.CreatedByID,
		CreatedAt:  share.CreatedAt,
	}
	if share.User != nil {
		shareDTO.Username = share.User.Username
	}
	return shareDTO
}

func ToItemShareDTOs(shares []models.ItemShare) []*dto.ShareGetDTO {
	shareDTOs := make([]*dto.ShareGetDTO, 0, len(shares))
	for i := range shares {
		shareDTOs = append(shareDTOs, ToItemShareDTO(&shares[i]))
	}
	return shareDTOs
}
