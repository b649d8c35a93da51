package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"posapi/src/catalog/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProduct_MapsStrapiEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products/abc", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"id":3,"documentId":"abc","name":"Cafe","price":12.5,"stock":9,"inventoryAlert":true,"inventoryAlertCount":4}}`)
	}))
	defer server.Close()
	t.Setenv("STRAPI_URL", server.URL)

	c := NewStrapiClient()
	product, err := c.GetProduct("abc")

	require.NoError(t, err)
	assert.Equal(t, "Cafe", product.Name)
	assert.Equal(t, 9, product.Stock)
	assert.True(t, product.InventoryAlert)
	assert.Equal(t, 4, product.InventoryAlertCount)
	assert.Equal(t, "12.5", product.Price.String())
}

func TestGetProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	t.Setenv("STRAPI_URL", server.URL)

	c := NewStrapiClient()
	_, err := c.GetProduct("missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrProductNotFound))
}

func TestGetProduct_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	t.Setenv("STRAPI_URL", server.URL)

	c := NewStrapiClient()
	_, err := c.GetProduct("abc")

	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrStrapiUnavailable))
}

func TestGetProduct_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // conexión rechazada
	t.Setenv("STRAPI_URL", server.URL)

	c := NewStrapiClient()
	_, err := c.GetProduct("abc")

	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrStrapiUnavailable))
}

func TestUpdateStock_SendsDataEnvelope(t *testing.T) {
	var captured map[string]map[string]int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/products/abc", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, `{"data":{}}`)
	}))
	defer server.Close()
	t.Setenv("STRAPI_URL", server.URL)

	c := NewStrapiClient()
	require.NoError(t, c.UpdateStock("abc", 7))

	assert.Equal(t, 7, captured["data"]["stock"])
}

func TestUpdateStock_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()
	t.Setenv("STRAPI_URL", server.URL)

	c := NewStrapiClient()
	err := c.UpdateStock("abc", 7)

	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrStrapiUnavailable))
}

func TestListProducts_FiltersByUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("filters[user]"))
		assert.Equal(t, "category", r.URL.Query().Get("populate"))
		fmt.Fprint(w, `{"data":[{"id":1}],"meta":{}}`)
	}))
	defer server.Close()
	t.Setenv("STRAPI_URL", server.URL)

	c := NewStrapiClient()
	raw, err := c.ListProducts("42")

	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"id":1}],"meta":{}}`, string(raw))
}

func TestCreateProduct_ForwardsAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body map[string]map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Cafe", body["data"]["name"])

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"data":{"id":1}}`)
	}))
	defer server.Close()
	t.Setenv("STRAPI_URL", server.URL)

	c := NewStrapiClient()
	raw, err := c.CreateProduct("Bearer tok", map[string]interface{}{"name": "Cafe"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":1}}`, string(raw))
}
