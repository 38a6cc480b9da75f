package route

import (
	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/controller"
)

// SetupSaleRoutes configura as rotas para registros de vendas
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	saleRouter := router.Group("/sales")
	{
		saleRouter.GET("", saleController.List)
		saleRouter.POST("", saleController.Create)
	}
}
