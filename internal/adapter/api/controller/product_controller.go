package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	"github.com/dscosta/pos-confeitaria/internal/domain/product"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepository product.Repository
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepository product.Repository) *ProductController {
	return &ProductController{
		productRepository: productRepository,
	}
}

// Create cria um novo produto
// @Summary Cria um novo produto
// @Description Cria um novo produto no catálogo da filial
// @Tags products
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := product.NewProduct(
		branch.GetBranchID(ctx),
		request.Name, request.Description,
		request.Price, request.CostPrice,
		request.Stock, request.Category,
		dto.ToProductSizes(request.Sizes),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.productRepository.Create(ctx, p); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// GetByID busca um produto pelo ID
// @Summary Busca um produto pelo ID
// @Description Busca um produto da filial pelo seu ID
// @Tags products
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) GetByID(ctx *gin.Context) {
	p, err := c.productRepository.FindByID(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Update atualiza um produto
// @Summary Atualiza um produto
// @Description Atualiza os dados de um produto existente
// @Tags products
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := c.productRepository.FindByID(ctx, ctx.Param("id"), branchID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	err = p.Update(request.Name, request.Description, request.Price, request.CostPrice,
		request.Stock, request.Category, dto.ToProductSizes(request.Sizes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.productRepository.Update(ctx, p); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// UpdateStock ajusta o estoque de um produto
// @Summary Ajusta o estoque de um produto
// @Description Define o estoque absoluto de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do produto"
// @Param stock body dto.ProductStockRequest true "Novo estoque"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/stock [patch]
func (c *ProductController) UpdateStock(ctx *gin.Context) {
	var request dto.ProductStockRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	err := c.productRepository.UpdateStock(ctx, ctx.Param("id"), branch.GetBranchID(ctx), request.Stock)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Estoque atualizado com sucesso", nil))
}

// Delete desativa um produto
// @Summary Desativa um produto
// @Description Desativa um produto (soft delete), preservando o histórico de vendas
// @Tags products
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	err := c.productRepository.Deactivate(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao desativar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Produto desativado com sucesso", nil))
}

// List lista os produtos da filial
// @Summary Lista os produtos
// @Description Lista os produtos ativos da filial, com filtros opcionais por categoria e estoque baixo
// @Tags products
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param category query string false "Filtrar por categoria"
// @Param low_stock query int false "Listar apenas produtos com estoque abaixo do limite"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var products []*product.Product
	var err error

	switch {
	case ctx.Query("low_stock") != "":
		threshold, convErr := strconv.Atoi(ctx.Query("low_stock"))
		if convErr != nil || threshold < 0 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Limite de estoque inválido", ""))
			return
		}
		products, err = c.productRepository.ListLowStock(ctx, branchID, threshold)
	case ctx.Query("category") != "":
		products, err = c.productRepository.ListByCategory(ctx, branchID, ctx.Query("category"))
	default:
		products, err = c.productRepository.ListByBranch(ctx, branchID)
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}
