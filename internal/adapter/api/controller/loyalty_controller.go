package controller

import (
	"errors"
	"net/http"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	appLoyalty "github.com/dscosta/pos-confeitaria/internal/application/loyalty"
	"github.com/dscosta/pos-confeitaria/internal/domain/loyalty"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// LoyaltyController gerencia o programa de fidelidade
type LoyaltyController struct {
	loyaltyRepository loyalty.Repository
	engine            *appLoyalty.Engine
}

// NewLoyaltyController cria uma nova instância de LoyaltyController
func NewLoyaltyController(loyaltyRepository loyalty.Repository, engine *appLoyalty.Engine) *LoyaltyController {
	return &LoyaltyController{
		loyaltyRepository: loyaltyRepository,
		engine:            engine,
	}
}

// CreateLevel cria um novo nível de fidelidade
// @Summary Cria um novo nível de fidelidade
// @Description Cria um novo nível. A pontuação mínima é única por filial.
// @Tags loyalty
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param level body dto.LoyaltyLevelRequest true "Dados do nível"
// @Success 201 {object} dto.LoyaltyLevelResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loyalty/levels [post]
func (c *LoyaltyController) CreateLevel(ctx *gin.Context) {
	var request dto.LoyaltyLevelRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	level, err := loyalty.NewLevel(
		branch.GetBranchID(ctx),
		request.Name, request.MinimumPoints, request.DiscountPercentage, request.Benefits,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.loyaltyRepository.CreateLevel(ctx, level); err != nil {
		if errors.Is(err, loyalty.ErrDuplicateMinPoints) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Já existe um nível com esta pontuação mínima", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar nível", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoyaltyLevelResponse(level))
}

// ListLevels lista os níveis de fidelidade da filial
// @Summary Lista os níveis de fidelidade
// @Description Lista os níveis da filial em ordem de pontuação mínima. Semeia os níveis padrão na primeira chamada.
// @Tags loyalty
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Success 200 {array} dto.LoyaltyLevelResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loyalty/levels [get]
func (c *LoyaltyController) ListLevels(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	if err := c.engine.EnsureDefaults(ctx, branchID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao preparar programa de fidelidade", err.Error()))
		return
	}

	levels, err := c.loyaltyRepository.ListLevels(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar níveis", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoyaltyLevelListResponse(levels))
}

// CreateReward cria uma nova recompensa
// @Summary Cria uma nova recompensa
// @Description Cria uma nova recompensa resgatável com pontos
// @Tags loyalty
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param reward body dto.LoyaltyRewardRequest true "Dados da recompensa"
// @Success 201 {object} dto.LoyaltyRewardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loyalty/rewards [post]
func (c *LoyaltyController) CreateReward(ctx *gin.Context) {
	var request dto.LoyaltyRewardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	reward, err := loyalty.NewReward(
		branch.GetBranchID(ctx),
		request.Name, request.Description, request.PointsRequired,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.loyaltyRepository.CreateReward(ctx, reward); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar recompensa", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoyaltyRewardResponse(reward))
}

// UpdateReward atualiza uma recompensa
// @Summary Atualiza uma recompensa
// @Description Atualiza uma recompensa existente, inclusive ativando ou desativando
// @Tags loyalty
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID da recompensa"
// @Param reward body dto.LoyaltyRewardRequest true "Dados da recompensa"
// @Success 200 {object} dto.LoyaltyRewardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loyalty/rewards/{id} [put]
func (c *LoyaltyController) UpdateReward(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var request dto.LoyaltyRewardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	reward, err := c.loyaltyRepository.FindRewardByID(ctx, ctx.Param("id"), branchID)
	if err != nil {
		if errors.Is(err, loyalty.ErrRewardNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Recompensa não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar recompensa", err.Error()))
		return
	}

	reward.Name = request.Name
	reward.Description = request.Description
	reward.PointsRequired = request.PointsRequired
	if request.Active != nil {
		reward.Active = *request.Active
	}

	if err := c.loyaltyRepository.UpdateReward(ctx, reward); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar recompensa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoyaltyRewardResponse(reward))
}

// ListRewards lista as recompensas da filial
// @Summary Lista as recompensas
// @Description Lista as recompensas da filial em ordem de pontos exigidos. Semeia as recompensas padrão na primeira chamada.
// @Tags loyalty
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Success 200 {array} dto.LoyaltyRewardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loyalty/rewards [get]
func (c *LoyaltyController) ListRewards(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	if err := c.engine.EnsureDefaults(ctx, branchID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao preparar programa de fidelidade", err.Error()))
		return
	}

	rewards, err := c.loyaltyRepository.ListRewards(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar recompensas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoyaltyRewardListResponse(rewards))
}

// Redeem resgata uma recompensa para um cliente
// @Summary Resgata uma recompensa
// @Description Troca pontos do cliente por uma recompensa ativa. Não altera o nível do cliente.
// @Tags loyalty
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param redemption body dto.RedeemRequest true "Cliente e recompensa"
// @Success 201 {object} dto.RedemptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loyalty/redeem [post]
func (c *LoyaltyController) Redeem(ctx *gin.Context) {
	var request dto.RedeemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	redemption, err := c.engine.Redeem(ctx, request.CustomerID, request.RewardID, branch.GetBranchID(ctx))
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrRewardNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Recompensa não encontrada", ""))
		case errors.Is(err, repository.ErrCustomerNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
		case errors.Is(err, loyalty.ErrRewardInactive):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Recompensa não está ativa", ""))
		case errors.Is(err, loyalty.ErrInsufficientPoints):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Pontos insuficientes para o resgate", ""))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao resgatar recompensa", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRedemptionResponse(redemption))
}
