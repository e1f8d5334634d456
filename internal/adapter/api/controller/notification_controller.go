package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/adapter/api/dto"
	"github.com/dscosta/pos-confeitaria/internal/adapter/repository"
	appNotification "github.com/dscosta/pos-confeitaria/internal/application/notification"
	"github.com/dscosta/pos-confeitaria/internal/domain/notification"
	"github.com/dscosta/pos-confeitaria/pkg/branch"
	"github.com/gin-gonic/gin"
)

// NotificationController gerencia as notificações da filial
type NotificationController struct {
	notificationRepository notification.Repository
	reminderService        *appNotification.ReminderService
}

// NewNotificationController cria uma nova instância de NotificationController
func NewNotificationController(
	notificationRepository notification.Repository,
	reminderService *appNotification.ReminderService,
) *NotificationController {
	return &NotificationController{
		notificationRepository: notificationRepository,
		reminderService:        reminderService,
	}
}

// List lista as notificações da filial
// @Summary Lista as notificações
// @Description Lista as notificações da filial, com filtro opcional de não lidas
// @Tags notifications
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param unread query bool false "Listar apenas não lidas"
// @Success 200 {array} dto.NotificationResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)

	var notifications []*notification.Notification
	var err error

	if ctx.Query("unread") == "true" {
		notifications, err = c.notificationRepository.ListUnread(ctx, branchID)
	} else {
		notifications, err = c.notificationRepository.ListByBranch(ctx, branchID)
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications))
}

// MarkRead marca uma notificação como lida
// @Summary Marca uma notificação como lida
// @Tags notifications
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Param id path string true "ID da notificação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	err := c.notificationRepository.MarkRead(ctx, ctx.Param("id"), branch.GetBranchID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Notificação não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao marcar notificação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notificação marcada como lida", nil))
}

// MarkAllRead marca todas as notificações da filial como lidas
// @Summary Marca todas as notificações como lidas
// @Tags notifications
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/read-all [patch]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	if err := c.notificationRepository.MarkAllRead(ctx, branch.GetBranchID(ctx)); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao marcar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notificações marcadas como lidas", nil))
}

// Refresh gera as notificações pendentes da filial
// @Summary Gera as notificações pendentes
// @Description Varre as encomendas com entrega próxima e os ingredientes abaixo do mínimo, criando os lembretes que ainda não existem
// @Tags notifications
// @Produce json
// @Param branch-id header string true "ID da filial"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/refresh [post]
func (c *NotificationController) Refresh(ctx *gin.Context) {
	branchID := branch.GetBranchID(ctx)
	now := time.Now()

	deliveries, err := c.reminderService.ScheduleDeliveryReminders(ctx, branchID, now)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar lembretes de entrega", err.Error()))
		return
	}

	lowStock, err := c.reminderService.ScheduleLowStockAlerts(ctx, branchID, now)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar alertas de estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notificações atualizadas", gin.H{
		"delivery_reminders": deliveries,
		"low_stock_alerts":   lowStock,
	}))
}
