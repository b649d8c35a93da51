package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"posapi/src/catalog/domain/entity"
)

// StrapiProductResponse representa la respuesta de Strapi para un producto por id
type StrapiProductResponse struct {
	Data entity.Product `json:"data"`
}

// StrapiListResponse representa una respuesta de colección de Strapi (passthrough)
type StrapiListResponse struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

// StrapiClient cliente HTTP para comunicarse con el CMS Strapi
type StrapiClient struct {
	httpClient *http.Client
	strapiURL  string
}

// NewStrapiClient crea una nueva instancia del cliente
func NewStrapiClient() *StrapiClient {
	strapiURL := os.Getenv("STRAPI_URL")
	if strapiURL == "" {
		strapiURL = "http://localhost:1337/api" // Default para entorno local
	}

	return &StrapiClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		strapiURL: strapiURL,
	}
}

// GetProduct obtiene un producto por id usando GET /products/{id}
func (c *StrapiClient) GetProduct(productID string) (*entity.Product, error) {
	reqURL := fmt.Sprintf("%s/products/%s", c.strapiURL, productID)

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error calling strapi: %v", entity.ErrStrapiUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", entity.ErrProductNotFound, productID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: strapi returned status %d: %s", entity.ErrStrapiUnavailable, resp.StatusCode, string(body))
	}

	var productResp StrapiProductResponse
	if err := json.Unmarshal(body, &productResp); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &productResp.Data, nil
}

// UpdateStock actualiza el stock de un producto usando PUT /products/{id}
// Solo escribe el campo stock, el resto del producto no se toca
func (c *StrapiClient) UpdateStock(productID string, newStock int) error {
	reqBody := map[string]interface{}{
		"data": map[string]interface{}{
			"stock": newStock,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("error marshalling request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/products/%s", c.strapiURL, productID)

	req, err := http.NewRequest("PUT", reqURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: error calling strapi: %v", entity.ErrStrapiUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: strapi returned status %d: %s", entity.ErrStrapiUnavailable, resp.StatusCode, string(body))
	}

	return nil
}

// ListProducts obtiene los productos de un usuario usando GET /products
// con populate de categoría y filtro por usuario (passthrough de la respuesta)
func (c *StrapiClient) ListProducts(userID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("populate", "category")
	params.Set("filters[user]", userID)

	reqURL := fmt.Sprintf("%s/products?%s", c.strapiURL, params.Encode())

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error calling strapi: %v", entity.ErrStrapiUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: strapi returned status %d: %s", entity.ErrStrapiUnavailable, resp.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}

// FindProductByDocumentID busca un producto del usuario filtrando por documentId
// Devuelve el campo data de la respuesta de Strapi tal cual
func (c *StrapiClient) FindProductByDocumentID(userID, productID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("populate[category]", "true")
	params.Set("filters[user][userId]", userID)
	params.Set("filters[documentId]", productID)

	reqURL := fmt.Sprintf("%s/products?%s", c.strapiURL, params.Encode())

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error calling strapi: %v", entity.ErrStrapiUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", entity.ErrProductNotFound, productID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: strapi returned status %d: %s", entity.ErrStrapiUnavailable, resp.StatusCode, string(body))
	}

	var listResp StrapiListResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return listResp.Data, nil
}

// CreateProduct crea un producto en Strapi usando POST /products
// El payload ya viene con el formato {data: {...}} que espera Strapi
func (c *StrapiClient) CreateProduct(authToken string, productData map[string]interface{}) (json.RawMessage, error) {
	reqBody := map[string]interface{}{
		"data": productData,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/products", c.strapiURL)

	req, err := http.NewRequest("POST", reqURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Pasar Authorization si existe
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error calling strapi: %v", entity.ErrStrapiUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: strapi returned status %d: %s", entity.ErrStrapiUnavailable, resp.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}

// UpdateProduct actualiza un producto en Strapi usando PUT /products/{id}
func (c *StrapiClient) UpdateProduct(productID, authToken string, productData map[string]interface{}) (json.RawMessage, error) {
	reqBody := map[string]interface{}{
		"data": productData,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/products/%s", c.strapiURL, productID)

	req, err := http.NewRequest("PUT", reqURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error calling strapi: %v", entity.ErrStrapiUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", entity.ErrProductNotFound, productID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: strapi returned status %d: %s", entity.ErrStrapiUnavailable, resp.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}
