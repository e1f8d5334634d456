package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	sales.Use(auth.JWTAuthMiddleware())
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.GetByID)
	}
}
