package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterPrintRoutes registra as rotas de impressão de recibos
func RegisterPrintRoutes(r *gin.RouterGroup, printController *controller.PrintController) {
	print := r.Group("/print")
	print.Use(auth.JWTAuthMiddleware())
	{
		print.GET("/sales/:id", printController.SaleReceipt)
		print.GET("/reservations/:id", printController.ReservationReceipt)
	}
}
