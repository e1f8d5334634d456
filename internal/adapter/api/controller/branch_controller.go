package controller

import (
	"errors"
	"net/http"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	"github.com/dscosta/pos-confeitaria/internal/domain/branch"
	"github.com/gin-gonic/gin"
)

// BranchController gerencia as requisições relacionadas a filiais
type BranchController struct {
	branchRepository branch.Repository
}

// NewBranchController cria uma nova instância de BranchController
func NewBranchController(branchRepository branch.Repository) *BranchController {
	return &BranchController{
		branchRepository: branchRepository,
	}
}

// Create cria uma nova filial
// @Summary Cria uma nova filial
// @Description Cria uma nova filial no sistema
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.BranchRequest true "Dados da filial"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches [post]
func (c *BranchController) Create(ctx *gin.Context) {
	var request dto.BranchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	b, err := branch.NewBranch(request.Name, request.Address, request.Phone, request.Email, request.Manager)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.branchRepository.Create(ctx, b); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar filial", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBranchResponse(b))
}

// GetByID busca uma filial pelo ID
// @Summary Busca uma filial pelo ID
// @Description Busca uma filial pelo seu ID
// @Tags branches
// @Produce json
// @Param id path string true "ID da filial"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [get]
func (c *BranchController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	b, err := c.branchRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Filial não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar filial", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// Update atualiza uma filial
// @Summary Atualiza uma filial
// @Description Atualiza os dados de uma filial existente
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "ID da filial"
// @Param branch body dto.BranchRequest true "Dados da filial"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [put]
func (c *BranchController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var request dto.BranchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	b, err := c.branchRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Filial não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar filial", err.Error()))
		return
	}

	if err := b.Update(request.Name, request.Address, request.Phone, request.Email, request.Manager); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.branchRepository.Update(ctx, b); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar filial", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// UpdateStatus ativa ou desativa uma filial
// @Summary Atualiza o status de uma filial
// @Description Ativa ou desativa uma filial
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "ID da filial"
// @Param status body dto.BranchStatusRequest true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/status [patch]
func (c *BranchController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var request dto.BranchStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	err := c.branchRepository.UpdateStatus(ctx, id, branch.Status(request.Status))
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Filial não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status atualizado com sucesso", nil))
}

// List lista as filiais
// @Summary Lista as filiais
// @Description Lista todas as filiais cadastradas
// @Tags branches
// @Produce json
// @Success 200 {array} dto.BranchResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches [get]
func (c *BranchController) List(ctx *gin.Context) {
	branches, err := c.branchRepository.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar filiais", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchListResponse(branches))
}
