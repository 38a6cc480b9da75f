package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/dto"
	saledomain "github.com/panisul/gestao/internal/domain/sale"
	"github.com/panisul/gestao/pkg/logger"
	"github.com/panisul/gestao/pkg/metrics"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleRepo saledomain.Repository
	logger   logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// List retorna todas as vendas registradas
// @Summary Listar vendas
// @Description Retorna todas as vendas na ordem em que foram registradas
// @Tags sales
// @Produce json
// @Success 200 {array} dto.SaleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	sales, err := c.saleRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponseList(sales))
}

// Create registra uma nova venda
// @Summary Registrar venda
// @Description Acrescenta uma venda completa à coleção, com ID e instante de criação já atribuídos
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s := req.ToDomain()
	if err := c.saleRepo.Append(ctx, s); err != nil {
		c.logger.Error("erro ao registrar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar venda", err.Error()))
		return
	}

	metrics.RecordsAppended.WithLabelValues("sales").Inc()
	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}
