package dto

// LoginRequest representa as credenciais de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de autenticação
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
