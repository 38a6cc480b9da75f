package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/controller"
	"github.com/panisul/gestao/internal/adapter/api/dto"
	"github.com/panisul/gestao/internal/adapter/api/route"
	"github.com/panisul/gestao/internal/adapter/repository"
	"github.com/panisul/gestao/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	l := logger.NewNopLogger()
	controllers := route.Controllers{
		Product: controller.NewProductController(repository.NewMemoryProductRepository(), l),
		Client:  controller.NewClientController(repository.NewMemoryClientRepository(), l),
		Sale:    controller.NewSaleController(repository.NewMemorySaleRepository(), l),
		Swap:    controller.NewSwapController(repository.NewMemorySwapRepository(), l),
	}
	route.SetupRoutes(router, "/api/v1", controllers)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCreateProductRespondsWithCreatedRecord(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/products",
		`{"name":"Pão Francês","dailyStock":120}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pão Francês", resp.Name)
	assert.Equal(t, 120, resp.DailyStock)
}

func TestCreateProductRequiresName(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", `{"dailyStock":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListProductsEmptyCollection(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestCreateSaleAcceptsCallerAssignedID(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/sales",
		`{"id":"1756000000000-ab12cd34","clientId":"c-1","productName":"Pão Francês","quantity":5,"paymentType":"avistapix","createdAt":"2026-08-28T08:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1756000000000-ab12cd34", resp.ID)
	assert.Equal(t, 5, resp.Quantity)
	assert.Nil(t, resp.DueDate)
}

func TestCreateSaleRejectsUnknownPaymentType(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/sales",
		`{"id":"v-1","clientId":"c-1","productName":"Pão Francês","quantity":5,"paymentType":"fiado"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSaleRejectsNonPositiveQuantity(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/sales",
		`{"id":"v-1","clientId":"c-1","productName":"Pão Francês","quantity":0,"paymentType":"avistapix"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwapRoundTrip(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/swaps",
		`{"id":"t-1","clientId":"c-1","productName":"Baguete","quantity":2,"returnedProduct":"Pão Doce","reason":"produto errado","createdAt":"2026-08-28T09:30:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/swaps", "")
	require.Equal(t, http.StatusOK, w.Code)

	var swaps []dto.SwapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &swaps))
	require.Len(t, swaps, 1)
	assert.Equal(t, "t-1", swaps[0].ID)
	assert.Equal(t, "Pão Doce", swaps[0].ReturnedProduct)
	assert.Equal(t, "produto errado", swaps[0].Reason)
}

func TestClientsListedInInsertionOrder(t *testing.T) {
	router := setupTestRouter()

	for _, payload := range []string{
		`{"id":"c-1","name":"Maria"}`,
		`{"id":"c-2","name":"Zé","phone":"11 97777-0002"}`,
		`{"id":"c-3","name":"Lanchonete do Zé","legalId":"12.345.678/0001-90"}`,
	} {
		w := doJSON(t, router, http.MethodPost, "/api/v1/clients", payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/clients", "")
	require.Equal(t, http.StatusOK, w.Code)

	var clients []dto.ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clients))
	require.Len(t, clients, 3)
	assert.Equal(t, []string{"c-1", "c-2", "c-3"},
		[]string{clients[0].ID, clients[1].ID, clients[2].ID})
}
