package controller

import (
	"errors"
	"net/http"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	"github.com/dscosta/pos-confeitaria/internal/domain/user"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/dscosta/pos-confeitaria/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AuthController gerencia as requisições de autenticação
type AuthController struct {
	userRepository user.Repository
	jwtService     *auth.JWTService
	logger         logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepository user.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Login autentica um usuário
// @Summary Autentica um usuário
// @Description Autentica um usuário com email e senha e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u, err := c.userRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar", err.Error()))
		return
	}

	if !u.IsActive() || !u.CheckPassword(request.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", ""))
		return
	}

	u.RegisterLogin()
	if err := c.userRepository.Update(ctx, u); err != nil {
		c.logger.Warn("falha ao registrar último login", "user_id", u.ID, "error", err)
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(u),
	})
}
