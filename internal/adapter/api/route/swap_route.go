package route

import (
	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/controller"
)

// SetupSwapRoutes configura as rotas para registros de trocas
func SetupSwapRoutes(router *gin.RouterGroup, swapController *controller.SwapController) {
	swapRouter := router.Group("/swaps")
	{
		swapRouter.GET("", swapController.List)
		swapRouter.POST("", swapController.Create)
	}
}
