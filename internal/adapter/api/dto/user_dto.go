package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/user"
)

// UserRequest representa a criação de usuário
type UserRequest struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=6"`
	Role      string   `json:"role" binding:"required,oneof=admin owner employee"`
	BranchIDs []string `json:"branch_ids"`
}

// UserUpdateRequest representa a atualização de usuário. A senha só é
// alterada quando enviada.
type UserUpdateRequest struct {
	Name      string   `json:"name" binding:"required"`
	Password  string   `json:"password" binding:"omitempty,min=6"`
	Role      string   `json:"role" binding:"required,oneof=admin owner employee"`
	BranchIDs []string `json:"branch_ids"`
}

// UserResponse representa a resposta de usuário, sem a senha
type UserResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	BranchIDs   []string   `json:"branch_ids"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToUserResponse converte um modelo de domínio em uma resposta DTO
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		BranchIDs:   u.BranchIDs,
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários
func ToUserListResponse(users []*user.User) []UserResponse {
	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = ToUserResponse(u)
	}
	return response
}
