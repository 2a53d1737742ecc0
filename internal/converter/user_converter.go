package converter

import (
	"github.com/josephprado/schedjoeler-api/internal/delivery/dto"
	"github.com/josephprado/schedjoeler-api/internal/domain/entity"
)

// UserToResponse converts a User entity to its wire representation.
// The surrogate id is never exposed, only the reference token.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		UUID:      user.UUID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}
}

// UsersToResponses converts a slice of User entities to response DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// UserFromCreateRequest builds a new User entity and assigns its
// reference token up front.
func UserFromCreateRequest(req *dto.CreateUserRequest) *entity.User {
	user := &entity.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	user.EnsureUUID()
	return user
}

// ApplyUserUpdate overwrites only the fields present in the request.
// Nil fields retain the persisted value.
func ApplyUserUpdate(user *entity.User, req *dto.UpdateUserRequest) {
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
}
