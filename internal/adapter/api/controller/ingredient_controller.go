package controller

import (
	"errors"
	"net/http"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	"github.com/dscosta/pos-confeitaria/internal/domain/ingredient"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// IngredientController gerencia as requisições relacionadas a ingredientes
type IngredientController struct {
	ingredientRepository ingredient.Repository
}

// NewIngredientController cria uma nova instância de IngredientController
func NewIngredientController(ingredientRepository ingredient.Repository) *IngredientController {
	return &IngredientController{
		ingredientRepository: ingredientRepository,
	}
}

// Create cria um novo ingrediente
// @Summary Cria um novo ingrediente
// @Description Cria um novo ingrediente no estoque da filial
// @Tags ingredients
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param ingredient body dto.IngredientRequest true "Dados do ingrediente"
// @Success 201 {object} dto.IngredientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ingredients [post]
func (c *IngredientController) Create(ctx *gin.Context) {
	var request dto.IngredientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	ing, err := ingredient.NewIngredient(
		branch.GetBranchID(ctx),
		request.Name, request.Quantity, request.MinQuantity,
		request.Unit, request.Cost,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.ingredientRepository.Create(ctx, ing); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar ingrediente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIngredientResponse(ing))
}

// GetByID busca um ingrediente pelo ID
// @Summary Busca um ingrediente pelo ID
// @Description Busca um ingrediente da filial pelo seu ID
// @Tags ingredients
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do ingrediente"
// @Success 200 {object} dto.IngredientResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ingredients/{id} [get]
func (c *IngredientController) GetByID(ctx *gin.Context) {
	ing, err := c.ingredientRepository.FindByID(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Ingrediente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar ingrediente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIngredientResponse(ing))
}

// Update atualiza os dados cadastrais de um ingrediente
// @Summary Atualiza um ingrediente
// @Description Atualiza os dados cadastrais do ingrediente. A quantidade só muda via ajustes.
// @Tags ingredients
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do ingrediente"
// @Param ingredient body dto.IngredientRequest true "Dados do ingrediente"
// @Success 200 {object} dto.IngredientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ingredients/{id} [put]
func (c *IngredientController) Update(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var request dto.IngredientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	ing, err := c.ingredientRepository.FindByID(ctx, ctx.Param("id"), branchID)
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Ingrediente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar ingrediente", err.Error()))
		return
	}

	if err := ing.Update(request.Name, request.MinQuantity, request.Unit, request.Cost); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.ingredientRepository.Update(ctx, ing); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar ingrediente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIngredientResponse(ing))
}

// Adjust aplica um ajuste de quantidade com registro no histórico
// @Summary Ajusta a quantidade de um ingrediente
// @Description Aplica uma entrada (delta positivo) ou saída (delta negativo) com registro no histórico
// @Tags ingredients
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do ingrediente"
// @Param adjustment body dto.IngredientAdjustmentRequest true "Ajuste de quantidade"
// @Success 200 {object} dto.IngredientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ingredients/{id}/adjust [post]
func (c *IngredientController) Adjust(ctx *gin.Context) {
	var request dto.IngredientAdjustmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	ing, err := c.ingredientRepository.AdjustQuantity(ctx, ctx.Param("id"), branch.GetBranchID(ctx), request.Delta, request.Reason)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrIngredientNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Ingrediente não encontrado", ""))
		case errors.Is(err, ingredient.ErrInsufficientStock):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Quantidade insuficiente em estoque", ""))
		case errors.Is(err, ingredient.ErrZeroDelta):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Ajuste não pode ser zero", ""))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao ajustar quantidade", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIngredientResponse(ing))
}

// Delete remove um ingrediente
// @Summary Remove um ingrediente
// @Description Remove um ingrediente de forma definitiva
// @Tags ingredients
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do ingrediente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ingredients/{id} [delete]
func (c *IngredientController) Delete(ctx *gin.Context) {
	err := c.ingredientRepository.Delete(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Ingrediente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover ingrediente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Ingrediente removido com sucesso", nil))
}

// List lista os ingredientes da filial
// @Summary Lista os ingredientes
// @Description Lista os ingredientes da filial, com filtro opcional de estoque baixo
// @Tags ingredients
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param low_stock query bool false "Listar apenas ingredientes abaixo do mínimo"
// @Success 200 {array} dto.IngredientResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ingredients [get]
func (c *IngredientController) List(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var ingredients []*ingredient.Ingredient
	var err error

	if ctx.Query("low_stock") == "true" {
		ingredients, err = c.ingredientRepository.ListLowStock(ctx, branchID)
	} else {
		ingredients, err = c.ingredientRepository.ListByBranch(ctx, branchID)
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar ingredientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIngredientListResponse(ingredients))
}

// History lista o histórico de movimentações de um ingrediente
// @Summary Lista o histórico de um ingrediente
// @Description Lista as movimentações do ingrediente, da mais recente para a mais antiga
// @Tags ingredients
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do ingrediente"
// @Success 200 {array} dto.IngredientHistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ingredients/{id}/history [get]
func (c *IngredientController) History(ctx *gin.Context) {
	entries, err := c.ingredientRepository.ListHistory(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar histórico", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIngredientHistoryResponse(entries))
}
