package converter

import (
	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

func UserToResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
		Active:      user.Active(),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func UsersToListResponse(users []entity.User) dto.UserListResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserToResponse(&users[i]))
	}
	return dto.UserListResponse{
		Users: responses,
		Total: len(responses),
	}
}

func UserToAuthResponse(user *entity.User, token, refreshToken string, expiresIn int64) dto.AuthResponse {
	return dto.AuthResponse{
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         string(user.Role),
		Active:       user.Active(),
	}
}
