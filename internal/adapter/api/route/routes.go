package route

import (
	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/controller"
	"github.com/panisul/gestao/pkg/metrics"
)

// Controllers agrupa os controllers da API de registros
type Controllers struct {
	Product *controller.ProductController
	Client  *controller.ClientController
	Sale    *controller.SaleController
	Swap    *controller.SwapController
}

// SetupRoutes configura todas as rotas da API de registros
func SetupRoutes(r *gin.Engine, basePath string, c Controllers) {
	api := r.Group(basePath)

	// Health check
	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Métricas no formato Prometheus
	api.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Uma coleção por tipo de registro, cada uma com listagem e inclusão
	SetupProductRoutes(api, c.Product)
	SetupClientRoutes(api, c.Client)
	SetupSaleRoutes(api, c.Sale)
	SetupSwapRoutes(api, c.Swap)
}
