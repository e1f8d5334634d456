package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	"github.com/dscosta/pos-confeitaria/internal/application/sales"
	"github.com/dscosta/pos-confeitaria/internal/domain/product"
	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleService    *sales.Service
	saleRepository sale.Repository
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleService *sales.Service, saleRepository sale.Repository) *SaleController {
	return &SaleController{
		saleService:    saleService,
		saleRepository: saleRepository,
	}
}

// Create registra uma venda do caixa
// @Summary Registra uma venda
// @Description Registra uma venda com preços resolvidos no servidor, descontando estoque e pontuando o cliente na mesma transação
// @Tags sales
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var request dto.SaleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	inputs := make([]sales.ItemInput, len(request.Items))
	for i, item := range request.Items {
		inputs[i] = sales.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
		}
	}

	newSale, err := c.saleService.RecordSale(ctx, branch.GetBranchID(ctx), inputs, request.PaymentMethod, request.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
		case errors.Is(err, repository.ErrCustomerNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", err.Error()))
		case errors.Is(err, product.ErrSizeNotFound):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Tamanho não cadastrado para o produto", err.Error()))
		case errors.Is(err, product.ErrProductNotActive):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Produto não está ativo", err.Error()))
		case errors.Is(err, sale.ErrNoItems), errors.Is(err, sale.ErrInvalidItem):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(newSale))
}

// GetByID busca uma venda pelo ID
// @Summary Busca uma venda pelo ID
// @Description Busca uma venda da filial pelo seu ID
// @Tags sales
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) GetByID(ctx *gin.Context) {
	s, err := c.saleRepository.FindByID(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// List lista as vendas da filial
// @Summary Lista as vendas
// @Description Lista as vendas da filial, com filtro opcional por período
// @Tags sales
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param from query string false "Início do período (RFC 3339)"
// @Param to query string false "Fim do período (RFC 3339)"
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var list []*sale.Sale
	var err error

	if ctx.Query("from") != "" && ctx.Query("to") != "" {
		var from, to time.Time
		from, err = time.Parse(time.RFC3339, ctx.Query("from"))
		if err == nil {
			to, err = time.Parse(time.RFC3339, ctx.Query("to"))
		}
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
			return
		}
		list, err = c.saleRepository.ListByDateRange(ctx, branchID, from, to)
	} else {
		list, err = c.saleRepository.ListByBranch(ctx, branchID)
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(list))
}
