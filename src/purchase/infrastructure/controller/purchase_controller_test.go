package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"posapi/src/catalog/infrastructure/client"
	"posapi/src/purchase/application/usecase"
	"posapi/src/shared/infrastructure/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startFakeStrapi levanta un Strapi simulado con productos en memoria
func startFakeStrapi(t *testing.T, stocks map[string]int, alerts map[string]int) {
	t.Helper()

	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/products/")

		mu.Lock()
		defer mu.Unlock()

		stock, ok := stocks[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet:
			threshold, hasAlert := alerts[id]
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{
					"id": 1, "documentId": id, "name": "Producto " + id,
					"price": 10.0, "stock": stock,
					"inventoryAlert": hasAlert, "inventoryAlertCount": threshold,
				},
			})
		case http.MethodPut:
			var body struct {
				Data struct {
					Stock int `json:"stock"`
				} `json:"data"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			stocks[id] = body.Data.Stock
			fmt.Fprint(w, `{"data":{}}`)
		}
	}))
	t.Cleanup(server.Close)
	t.Setenv("STRAPI_URL", server.URL)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	strapiClient := client.NewStrapiClient()
	buyProductsUC := usecase.NewBuyProductsUseCase(
		usecase.NewValidateStockUseCase(strapiClient),
		usecase.NewReduceStockUseCase(strapiClient),
		usecase.NewAlertStockUseCase(strapiClient),
		nil,
		nil,
		false,
	)

	router := gin.New()
	api := router.Group("/api")
	ctrl := NewPurchaseController(buyProductsUC, nil, validation.New())
	ctrl.RegisterRoutes(api, func(ctx *gin.Context) { ctx.Next() })
	return router
}

func doBuy(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/products/buyProducts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBuyProductsEndpoint_Confirmed(t *testing.T) {
	startFakeStrapi(t, map[string]int{"a": 10}, nil)
	router := newTestRouter()

	rec := doBuy(t, router, `{"products":[{"productId":"a","quantity":3}]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Compra confirmada", resp["message"])
	// alerts solo aparece cuando hay alertas
	_, hasAlerts := resp["alerts"]
	assert.False(t, hasAlerts)
}

func TestBuyProductsEndpoint_ConfirmedWithAlerts(t *testing.T) {
	startFakeStrapi(t, map[string]int{"b": 6}, map[string]int{"b": 5})
	router := newTestRouter()

	rec := doBuy(t, router, `{"products":[{"productId":"b","quantity":2}]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string   `json:"message"`
		Alerts  []string `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Compra confirmada", resp.Message)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "El producto Producto b tiene bajo inventario. Solo quedan 4 unidades.", resp.Alerts[0])
}

func TestBuyProductsEndpoint_InsufficientStock(t *testing.T) {
	startFakeStrapi(t, map[string]int{"a": 10, "b": 2}, nil)
	router := newTestRouter()

	rec := doBuy(t, router, `{"products":[{"productId":"a","quantity":3},{"productId":"b","quantity":5}]}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Error al confirmar la compra", resp["message"])
	assert.Equal(t, "Stock insuficiente del producto Producto b", resp["error"])
}

func TestBuyProductsEndpoint_InvalidBody(t *testing.T) {
	startFakeStrapi(t, map[string]int{}, nil)
	router := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"sin productos", `{"products":[]}`},
		{"cantidad cero", `{"products":[{"productId":"a","quantity":0}]}`},
		{"sin productId", `{"products":[{"quantity":2}]}`},
		{"json roto", `{`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doBuy(t, router, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListPurchasesEndpoint_UnavailableWithoutDB(t *testing.T) {
	startFakeStrapi(t, map[string]int{}, nil)
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/purchases", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
