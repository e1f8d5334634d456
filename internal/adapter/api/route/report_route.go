package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registra as rotas de relatórios
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	reports := r.Group("/reports")
	reports.Use(auth.JWTAuthMiddleware())
	{
		reports.GET("/sales", reportController.Sales)
		reports.GET("/inventory", reportController.Inventory)
		reports.GET("/reservations", reportController.Reservations)
	}
}
