package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// ReservationController gerencia as requisições relacionadas a encomendas
type ReservationController struct {
	reservationRepository reservation.Repository
}

// NewReservationController cria uma nova instância de ReservationController
func NewReservationController(reservationRepository reservation.Repository) *ReservationController {
	return &ReservationController{
		reservationRepository: reservationRepository,
	}
}

// Create cria uma nova encomenda
// @Summary Cria uma nova encomenda
// @Description Cria uma encomenda com total e saldo restante derivados dos itens. O adiantamento é validado contra o total.
// @Tags reservations
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param reservation body dto.ReservationRequest true "Dados da encomenda"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reservations [post]
func (c *ReservationController) Create(ctx *gin.Context) {
	var request dto.ReservationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	res, err := reservation.NewReservation(
		branch.GetBranchID(ctx),
		request.CustomerName, request.CustomerPhone, request.CustomerEmail, request.CustomerAddress,
		request.Date, request.DeliveryDate,
		dto.ToReservationItems(request.Items),
		request.PaymentMethod,
		request.HasAdvancePayment, request.AdvanceAmount, request.AdvancePaymentMethod,
		request.Notes,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.reservationRepository.Create(ctx, res); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar encomenda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

// GetByID busca uma encomenda pelo ID
// @Summary Busca uma encomenda pelo ID
// @Description Busca uma encomenda da filial pelo seu ID
// @Tags reservations
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID da encomenda"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reservations/{id} [get]
func (c *ReservationController) GetByID(ctx *gin.Context) {
	res, err := c.reservationRepository.FindByID(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Encomenda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar encomenda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

// Update atualiza uma encomenda pendente
// @Summary Atualiza uma encomenda
// @Description Atualiza uma encomenda pendente, recalculando total e saldo restante
// @Tags reservations
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID da encomenda"
// @Param reservation body dto.ReservationRequest true "Dados da encomenda"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reservations/{id} [put]
func (c *ReservationController) Update(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var request dto.ReservationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	existing, err := c.reservationRepository.FindByID(ctx, ctx.Param("id"), branchID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Encomenda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar encomenda", err.Error()))
		return
	}

	if existing.Status != reservation.StatusPending {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Encomenda não pode mais ser alterada", ""))
		return
	}

	// Recria a encomenda com os dados novos para revalidar itens, datas e
	// adiantamento, preservando identidade e criação.
	updated, err := reservation.NewReservation(
		branchID,
		request.CustomerName, request.CustomerPhone, request.CustomerEmail, request.CustomerAddress,
		request.Date, request.DeliveryDate,
		dto.ToReservationItems(request.Items),
		request.PaymentMethod,
		request.HasAdvancePayment, request.AdvanceAmount, request.AdvancePaymentMethod,
		request.Notes,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	updated.ID = existing.ID
	updated.Status = existing.Status
	updated.CreatedAt = existing.CreatedAt

	if err := c.reservationRepository.Update(ctx, updated); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar encomenda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReservationResponse(updated))
}

// UpdateStatus muda o status de uma encomenda
// @Summary Atualiza o status de uma encomenda
// @Description Conclui ou cancela uma encomenda pendente. Não mexe em estoque nem em pontos.
// @Tags reservations
// @Accept json
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID da encomenda"
// @Param status body dto.ReservationStatusRequest true "Novo status"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reservations/{id}/status [patch]
func (c *ReservationController) UpdateStatus(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var request dto.ReservationStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	res, err := c.reservationRepository.FindByID(ctx, ctx.Param("id"), branchID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Encomenda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar encomenda", err.Error()))
		return
	}

	if err := res.ChangeStatus(reservation.Status(request.Status)); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Transição de status não permitida", err.Error()))
		return
	}

	if err := c.reservationRepository.UpdateStatus(ctx, res.ID, branchID, res.Status); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

// List lista as encomendas da filial
// @Summary Lista as encomendas
// @Description Lista as encomendas da filial, com filtros opcionais por status, período de entrega ou próximos dias
// @Tags reservations
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param status query string false "Filtrar por status (pending, completed, cancelled)"
// @Param from query string false "Início do período de entrega (RFC 3339)"
// @Param to query string false "Fim do período de entrega (RFC 3339)"
// @Param upcoming query int false "Listar encomendas pendentes dos próximos N dias"
// @Success 200 {array} dto.ReservationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reservations [get]
func (c *ReservationController) List(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var reservations []*reservation.Reservation
	var err error

	switch {
	case ctx.Query("upcoming") != "":
		days, convErr := strconv.Atoi(ctx.Query("upcoming"))
		if convErr != nil || days < 0 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Número de dias inválido", ""))
			return
		}
		reservations, err = c.reservationRepository.ListUpcoming(ctx, branchID, days)
	case ctx.Query("from") != "" && ctx.Query("to") != "":
		var from, to time.Time
		from, err = time.Parse(time.RFC3339, ctx.Query("from"))
		if err == nil {
			to, err = time.Parse(time.RFC3339, ctx.Query("to"))
		}
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
			return
		}
		reservations, err = c.reservationRepository.ListByDateRange(ctx, branchID, from, to)
	case ctx.Query("status") != "":
		reservations, err = c.reservationRepository.ListByStatus(ctx, branchID, reservation.Status(ctx.Query("status")))
	default:
		reservations, err = c.reservationRepository.ListByBranch(ctx, branchID)
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar encomendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReservationListResponse(reservations))
}
