package controller

import (
	"errors"
	"net/http"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	"github.com/dscosta/pos-confeitaria/internal/domain/settings"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// SettingsController gerencia as configurações da loja
type SettingsController struct {
	settingsRepository settings.Repository
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settingsRepository settings.Repository) *SettingsController {
	return &SettingsController{
		settingsRepository: settingsRepository,
	}
}

// Get retorna a configuração efetiva da filial
// @Summary Busca as configurações da loja
// @Description Retorna a configuração da filial ou, na falta dela, a configuração global
// @Tags settings
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Success 200 {object} dto.SettingsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	s, err := c.settingsRepository.Resolve(ctx, branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Configuração não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar configuração", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}

// Save grava a configuração da filial
// @Summary Salva as configurações da loja
// @Description Cria ou atualiza a configuração da filial em uma única operação
// @Tags settings
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param settings body dto.SettingsRequest true "Dados da configuração"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings [put]
func (c *SettingsController) Save(ctx *gin.Context) {
	var request dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := settings.NewStoreSettings(
		branch.GetBranchID(ctx),
		request.Name, request.Address, request.Phone, request.Email,
		request.Theme, settings.ReceiptLayout(request.ReceiptLayout),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.settingsRepository.Save(ctx, s); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar configuração", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}
