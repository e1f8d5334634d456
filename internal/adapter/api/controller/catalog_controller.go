package controller

import (
	"errors"
	"net/http"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	"github.com/dscosta/pos-confeitaria/internal/domain/catalog"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// CatalogController gerencia categorias e tamanhos do cardápio
type CatalogController struct {
	categoryRepository catalog.CategoryRepository
	sizeRepository     catalog.SizeRepository
}

// NewCatalogController cria uma nova instância de CatalogController
func NewCatalogController(categoryRepository catalog.CategoryRepository, sizeRepository catalog.SizeRepository) *CatalogController {
	return &CatalogController{
		categoryRepository: categoryRepository,
		sizeRepository:     sizeRepository,
	}
}

// CreateCategory cria uma nova categoria
// @Summary Cria uma nova categoria
// @Description Cria uma nova categoria de produtos na filial
// @Tags catalog
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var request dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	category, err := catalog.NewCategory(branch.GetBranchID(ctx), request.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.categoryRepository.Create(ctx, category); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// UpdateCategory atualiza uma categoria
// @Summary Atualiza uma categoria
// @Description Atualiza o nome de uma categoria existente
// @Tags catalog
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID da categoria"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (c *CatalogController) UpdateCategory(ctx *gin.Context) {
	id := ctx.Param("id")
	branchID := branch.GetBranchID(ctx)

	var request dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	category, err := c.categoryRepository.FindByID(ctx, id, branchID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar categoria", err.Error()))
		return
	}

	if err := category.Update(request.Name); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.categoryRepository.Update(ctx, category); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// DeleteCategory remove uma categoria
// @Summary Remove uma categoria
// @Description Remove uma categoria de forma definitiva
// @Tags catalog
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CatalogController) DeleteCategory(ctx *gin.Context) {
	err := c.categoryRepository.Delete(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Categoria removida com sucesso", nil))
}

// ListCategories lista as categorias da filial
// @Summary Lista as categorias
// @Description Lista as categorias da filial
// @Tags catalog
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.categoryRepository.ListByBranch(ctx, branch.GetBranchID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// CreateSize cria um novo tamanho
// @Summary Cria um novo tamanho
// @Description Cria um novo tamanho de produto na filial
// @Tags catalog
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param size body dto.SizeRequest true "Dados do tamanho"
// @Success 201 {object} dto.SizeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sizes [post]
func (c *CatalogController) CreateSize(ctx *gin.Context) {
	var request dto.SizeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	size, err := catalog.NewSize(branch.GetBranchID(ctx), request.Name, request.ReferenceValue)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.sizeRepository.Create(ctx, size); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar tamanho", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSizeResponse(size))
}

// UpdateSize atualiza um tamanho
// @Summary Atualiza um tamanho
// @Description Atualiza um tamanho existente
// @Tags catalog
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do tamanho"
// @Param size body dto.SizeRequest true "Dados do tamanho"
// @Success 200 {object} dto.SizeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sizes/{id} [put]
func (c *CatalogController) UpdateSize(ctx *gin.Context) {
	id := ctx.Param("id")
	branchID := branch.GetBranchID(ctx)

	var request dto.SizeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	size, err := c.sizeRepository.FindByID(ctx, id, branchID)
	if err != nil {
		if errors.Is(err, repository.ErrSizeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tamanho não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tamanho", err.Error()))
		return
	}

	if err := size.Update(request.Name, request.ReferenceValue); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.sizeRepository.Update(ctx, size); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar tamanho", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSizeResponse(size))
}

// DeleteSize remove um tamanho
// @Summary Remove um tamanho
// @Description Remove um tamanho de forma definitiva
// @Tags catalog
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do tamanho"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sizes/{id} [delete]
func (c *CatalogController) DeleteSize(ctx *gin.Context) {
	err := c.sizeRepository.Delete(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrSizeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tamanho não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover tamanho", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Tamanho removido com sucesso", nil))
}

// ListSizes lista os tamanhos da filial
// @Summary Lista os tamanhos
// @Description Lista os tamanhos da filial
// @Tags catalog
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Success 200 {array} dto.SizeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sizes [get]
func (c *CatalogController) ListSizes(ctx *gin.Context) {
	sizes, err := c.sizeRepository.ListByBranch(ctx, branch.GetBranchID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar tamanhos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSizeListResponse(sizes))
}
