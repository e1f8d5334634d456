package controller

import (
	"errors"
	"net/http"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	"github.com/dscosta/pos-confeitaria/internal/domain/customer"
	"github.com/dscosta/pos-confeitaria/internal/domain/loyalty"
	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepository customer.Repository
	saleRepository     sale.Repository
	loyaltyRepository  loyalty.Repository
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(
	customerRepository customer.Repository,
	saleRepository sale.Repository,
	loyaltyRepository loyalty.Repository,
) *CustomerController {
	return &CustomerController{
		customerRepository: customerRepository,
		saleRepository:     saleRepository,
		loyaltyRepository:  loyaltyRepository,
	}
}

// Create cria um novo cliente
// @Summary Cria um novo cliente
// @Description Cria um novo cliente na filial
// @Tags customers
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var request dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cust, err := customer.NewCustomer(
		branch.GetBranchID(ctx),
		request.Name, request.Email, request.Phone, request.Address, request.Notes,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.customerRepository.Create(ctx, cust); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(cust))
}

// GetByID busca um cliente pelo ID
// @Summary Busca um cliente pelo ID
// @Description Busca um cliente da filial pelo seu ID
// @Tags customers
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) GetByID(ctx *gin.Context) {
	cust, err := c.customerRepository.FindByID(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Update atualiza um cliente
// @Summary Atualiza um cliente
// @Description Atualiza os dados cadastrais de um cliente. Pontos e nível não são alterados por aqui.
// @Tags customers
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do cliente"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var request dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cust, err := c.customerRepository.FindByID(ctx, ctx.Param("id"), branchID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	if err := cust.Update(request.Name, request.Email, request.Phone, request.Address, request.Notes); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.customerRepository.Update(ctx, cust); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Delete desativa um cliente
// @Summary Desativa um cliente
// @Description Desativa um cliente (soft delete), preservando o histórico de vendas
// @Tags customers
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	err := c.customerRepository.Deactivate(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao desativar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Cliente desativado com sucesso", nil))
}

// List lista os clientes da filial
// @Summary Lista os clientes
// @Description Lista os clientes ativos da filial
// @Tags customers
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	customers, err := c.customerRepository.ListByBranch(ctx, branch.GetBranchID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers))
}

// OrderHistory lista o histórico de pedidos do cliente
// @Summary Lista o histórico de pedidos
// @Description Lista os pedidos do cliente, projetados das vendas registradas, do mais recente para o mais antigo
// @Tags customers
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do cliente"
// @Success 200 {array} dto.CustomerOrderResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/orders [get]
func (c *CustomerController) OrderHistory(ctx *gin.Context) {
	sales, err := c.saleRepository.ListByCustomer(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerOrderHistory(sales))
}

// Redemptions lista os resgates de recompensas do cliente
// @Summary Lista os resgates do cliente
// @Description Lista os resgates de recompensas do cliente, do mais recente para o mais antigo
// @Tags customers
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID do cliente"
// @Success 200 {array} dto.RedemptionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/redemptions [get]
func (c *CustomerController) Redemptions(ctx *gin.Context) {
	redemptions, err := c.loyaltyRepository.ListRedemptions(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar resgates", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRedemptionListResponse(redemptions))
}
