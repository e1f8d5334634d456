package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/domain/product"
	"github.com/dscosta/pos-confeitaria/internal/domain/report"
	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// ReportController gerencia os relatórios da filial
type ReportController struct {
	saleRepository        sale.Repository
	productRepository     product.Repository
	reservationRepository reservation.Repository
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(
	saleRepository sale.Repository,
	productRepository product.Repository,
	reservationRepository reservation.Repository,
) *ReportController {
	return &ReportController{
		saleRepository:        saleRepository,
		productRepository:     productRepository,
		reservationRepository: reservationRepository,
	}
}

// reportPeriod lê from/to da query string; sem parâmetros usa os últimos
// trinta dias.
func reportPeriod(ctx *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := ctx.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := ctx.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	return from, to, nil
}

// Sales gera o relatório de vendas
// @Summary Relatório de vendas
// @Description Agrega as vendas do período em baldes de tempo, com quebra por forma de pagamento, melhores dias e produtos mais vendidos
// @Tags reports
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param from query string false "Início do período (RFC 3339, padrão últimos 30 dias)"
// @Param to query string false "Fim do período (RFC 3339, padrão agora)"
// @Param granularity query string false "Granularidade dos baldes (daily, weekly, monthly)"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) Sales(ctx *gin.Context) {
	from, to, err := reportPeriod(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
		return
	}

	granularity := report.GranularityDaily
	if raw := ctx.Query("granularity"); raw != "" {
		granularity = report.Granularity(raw)
	}

	sales, err := c.saleRepository.ListByDateRange(ctx, branch.GetBranchID(ctx), from, to)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	buckets, err := report.AggregateSales(sales, from, to, granularity)
	if err != nil {
		if errors.Is(err, report.ErrInvalidGranularity) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Granularidade inválida", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório", err.Error()))
		return
	}

	var totalRevenue float64
	for _, s := range sales {
		totalRevenue += s.Total
	}

	ctx.JSON(http.StatusOK, dto.SalesReportResponse{
		Buckets:        buckets,
		PaymentMethods: report.PaymentMethodBreakdown(sales),
		BestDays:       report.BestDays(buckets, 5),
		BestSellers:    report.BestSellingProducts(sales, 10),
		TotalRevenue:   totalRevenue,
		TotalSales:     len(sales),
	})
}

// Inventory gera o relatório de estoque
// @Summary Relatório de estoque
// @Description Lista os produtos com menor e maior estoque da filial
// @Tags reports
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Success 200 {object} dto.InventoryReportResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/inventory [get]
func (c *ReportController) Inventory(ctx *gin.Context) {
	products, err := c.productRepository.ListByBranch(ctx, branch.GetBranchID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.InventoryReportResponse{
		LowStock:  report.LowStockProducts(products, 10),
		HighStock: report.HighStockProducts(products, 10),
	})
}

// Reservations gera o relatório de encomendas
// @Summary Relatório de encomendas
// @Description Agrega as encomendas do período por status, dia da semana de entrega e produtos mais encomendados
// @Tags reports
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param from query string false "Início do período de entrega (RFC 3339, padrão últimos 30 dias)"
// @Param to query string false "Fim do período de entrega (RFC 3339, padrão agora)"
// @Success 200 {object} dto.ReservationsReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/reservations [get]
func (c *ReportController) Reservations(ctx *gin.Context) {
	from, to, err := reportPeriod(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
		return
	}

	reservations, err := c.reservationRepository.ListByDateRange(ctx, branch.GetBranchID(ctx), from, to)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar encomendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ReservationsReportResponse{
		ByStatus:    report.ReservationsByStatus(reservations),
		ByWeekday:   report.ReservationsByWeekday(reservations),
		TopProducts: report.TopReservedProducts(reservations),
	})
}
