package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes registra as rotas do módulo de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := r.Group("/customers")
	customers.Use(auth.JWTAuthMiddleware())
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/:id", customerController.GetByID)
		customers.PUT("/:id", customerController.Update)
		customers.DELETE("/:id", customerController.Delete)
		customers.GET("/:id/orders", customerController.OrderHistory)
		customers.GET("/:id/redemptions", customerController.Redemptions)
	}
}
