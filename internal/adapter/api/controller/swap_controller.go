package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/dto"
	swapdomain "github.com/panisul/gestao/internal/domain/swap"
	"github.com/panisul/gestao/pkg/logger"
	"github.com/panisul/gestao/pkg/metrics"
)

// SwapController gerencia as requisições relacionadas a trocas
type SwapController struct {
	swapRepo swapdomain.Repository
	logger   logger.Logger
}

// NewSwapController cria uma nova instância de SwapController
func NewSwapController(swapRepo swapdomain.Repository, logger logger.Logger) *SwapController {
	return &SwapController{
		swapRepo: swapRepo,
		logger:   logger,
	}
}

// List retorna todas as trocas registradas
// @Summary Listar trocas
// @Description Retorna todas as trocas na ordem em que foram registradas
// @Tags swaps
// @Produce json
// @Success 200 {array} dto.SwapResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /swaps [get]
func (c *SwapController) List(ctx *gin.Context) {
	swaps, err := c.swapRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar trocas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar trocas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSwapResponseList(swaps))
}

// Create registra uma nova troca
// @Summary Registrar troca
// @Description Acrescenta uma troca completa à coleção, com ID e instante de criação já atribuídos
// @Tags swaps
// @Accept json
// @Produce json
// @Param swap body dto.SwapRequest true "Dados da troca"
// @Success 201 {object} dto.SwapResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /swaps [post]
func (c *SwapController) Create(ctx *gin.Context) {
	var req dto.SwapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s := req.ToDomain()
	if err := c.swapRepo.Append(ctx, s); err != nil {
		c.logger.Error("erro ao registrar troca", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar troca", err.Error()))
		return
	}

	metrics.RecordsAppended.WithLabelValues("swaps").Inc()
	ctx.JSON(http.StatusCreated, dto.ToSwapResponse(s))
}
