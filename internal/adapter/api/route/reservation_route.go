package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterReservationRoutes registra as rotas do módulo de encomendas
func RegisterReservationRoutes(r *gin.RouterGroup, reservationController *controller.ReservationController) {
	reservations := r.Group("/reservations")
	reservations.Use(auth.JWTAuthMiddleware())
	{
		reservations.POST("", reservationController.Create)
		reservations.GET("", reservationController.List)
		reservations.GET("/:id", reservationController.GetByID)
		reservations.PUT("/:id", reservationController.Update)
		reservations.PATCH("/:id/status", reservationController.UpdateStatus)
	}
}
