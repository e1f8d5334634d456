package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrEmptyEmail   = errors.New("email não pode ser vazio")
	ErrInvalidRole  = errors.New("papel de usuário inválido")
	ErrUserInactive = errors.New("usuário não está ativo")
)

// Role representa o papel/função do usuário
type Role string

// Status representa o status do usuário
type Status string

// Constantes para Role
const (
	RoleAdmin    Role = "admin"    // Administrador do sistema
	RoleOwner    Role = "owner"    // Dono do negócio
	RoleEmployee Role = "employee" // Funcionário regular
)

// Constantes para Status
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User representa um usuário/funcionário do sistema. Donos e
// administradores podem atuar em várias filiais.
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"` // O hash da senha nunca sai nas respostas JSON
	Role        Role       `json:"role"`
	BranchIDs   []string   `json:"branch_ids"`
	Status      Status     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já com hash
func NewUser(name, email, password string, role Role, branchIDs []string) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if role != RoleAdmin && role != RoleOwner && role != RoleEmployee {
		return nil, ErrInvalidRole
	}

	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		BranchIDs: branchIDs,
		Status:    StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasAccessToBranch verifica se o usuário tem acesso à filial especificada.
// Administradores e donos têm acesso a todas as filiais.
func (u *User) HasAccessToBranch(branchID string) bool {
	if u.Role == RoleAdmin || u.Role == RoleOwner {
		return true
	}
	for _, id := range u.BranchIDs {
		if id == branchID {
			return true
		}
	}
	return false
}

// RegisterLogin registra o momento do último login
func (u *User) RegisterLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// Update atualiza os dados cadastrais do usuário
func (u *User) Update(name string, role Role, branchIDs []string) error {
	if name == "" {
		return ErrEmptyName
	}
	if role != RoleAdmin && role != RoleOwner && role != RoleEmployee {
		return ErrInvalidRole
	}

	u.Name = name
	u.Role = role
	u.BranchIDs = branchIDs
	u.UpdatedAt = time.Now()
	return nil
}

// Deactivate marca o usuário como inativo (soft delete)
func (u *User) Deactivate() {
	u.Status = StatusInactive
	u.UpdatedAt = time.Now()
}
