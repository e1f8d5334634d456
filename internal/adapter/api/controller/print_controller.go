package controller

import (
	"errors"
	"net/http"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	"github.com/dscosta/pos-confeitaria/internal/application/printing"
	"github.com/dscosta/pos-confeitaria/internal/domain/customer"
	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
	"github.com/dscosta/pos-confeitaria/internal/domain/settings"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// PrintController renderiza recibos de vendas e encomendas
type PrintController struct {
	saleRepository        sale.Repository
	reservationRepository reservation.Repository
	customerRepository    customer.Repository
	settingsRepository    settings.Repository
}

// NewPrintController cria uma nova instância de PrintController
func NewPrintController(
	saleRepository sale.Repository,
	reservationRepository reservation.Repository,
	customerRepository customer.Repository,
	settingsRepository settings.Repository,
) *PrintController {
	return &PrintController{
		saleRepository:        saleRepository,
		reservationRepository: reservationRepository,
		customerRepository:    customerRepository,
		settingsRepository:    settingsRepository,
	}
}

// receiptLayout resolve o layout do recibo: o parâmetro layout da query
// sobrepõe o configurado na loja.
func receiptLayout(ctx *gin.Context, store *settings.StoreSettings) (settings.ReceiptLayout, error) {
	layout := store.ReceiptLayout
	if raw := ctx.Query("layout"); raw != "" {
		layout = settings.ReceiptLayout(raw)
	}
	if layout != settings.LayoutThermal && layout != settings.LayoutFull {
		return "", settings.ErrInvalidReceiptLayout
	}
	return layout, nil
}

// storeSettings busca a configuração efetiva da filial, com retaguarda
// vazia quando nada foi configurado. Recibo sem cabeçalho ainda imprime.
func (c *PrintController) storeSettings(ctx *gin.Context, branchID string) (*settings.StoreSettings, error) {
	store, err := c.settingsRepository.Resolve(ctx, branchID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return &settings.StoreSettings{ReceiptLayout: settings.LayoutThermal}, nil
		}
		return nil, err
	}
	return store, nil
}

// SaleReceipt renderiza o recibo de uma venda
// @Summary Recibo de venda
// @Description Renderiza o recibo de uma venda como texto, no layout configurado ou no informado na query
// @Tags print
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID da venda"
// @Param layout query string false "Layout do recibo (thermal, full)"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /print/sales/{id} [get]
func (c *PrintController) SaleReceipt(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	s, err := c.saleRepository.FindByID(ctx, ctx.Param("id"), branchID)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar venda", err.Error()))
		return
	}

	store, err := c.storeSettings(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar configuração", err.Error()))
		return
	}

	layout, err := receiptLayout(ctx, store)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Layout de recibo inválido", err.Error()))
		return
	}

	customerName := ""
	if s.CustomerID != "" {
		if cust, err := c.customerRepository.FindByID(ctx, s.CustomerID, branchID); err == nil {
			customerName = cust.Name
		}
	}

	receipt := printing.BuildFromSale(s, store, customerName)

	ctx.JSON(http.StatusOK, dto.ReceiptResponse{
		Layout:  string(layout),
		Content: receipt.Render(layout),
	})
}

// ReservationReceipt renderiza o recibo de uma encomenda
// @Summary Recibo de encomenda
// @Description Renderiza o recibo de uma encomenda como texto, com adiantamento e saldo restante
// @Tags print
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID da encomenda"
// @Param layout query string false "Layout do recibo (thermal, full)"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /print/reservations/{id} [get]
func (c *PrintController) ReservationReceipt(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	res, err := c.reservationRepository.FindByID(ctx, ctx.Param("id"), branchID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Encomenda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar encomenda", err.Error()))
		return
	}

	store, err := c.storeSettings(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar configuração", err.Error()))
		return
	}

	layout, err := receiptLayout(ctx, store)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Layout de recibo inválido", err.Error()))
		return
	}

	receipt := printing.BuildFromReservation(res, store)

	ctx.JSON(http.StatusOK, dto.ReceiptResponse{
		Layout:  string(layout),
		Content: receipt.Render(layout),
	})
}
