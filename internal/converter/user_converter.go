package converter

import (
	"pharma-info-service/internal/delivery/dto"
	"pharma-info-service/internal/domain/entity"
)

// UserToResponse converts a User entity to its public projection.
// The password hash never leaves the entity.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:           user.ID,
		PharmacistID: user.PharmacistID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
	}
}
