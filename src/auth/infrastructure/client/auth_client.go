package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"posapi/src/auth/domain/entity"
)

// strapiLoginRequest representa el body de POST /auth/local en Strapi
type strapiLoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// strapiLoginResponse representa la respuesta de autenticación de Strapi
type strapiLoginResponse struct {
	JWT  string          `json:"jwt"`
	User json.RawMessage `json:"user,omitempty"`
}

// StrapiAuthClient cliente HTTP para la autenticación local de Strapi
type StrapiAuthClient struct {
	httpClient *http.Client
	strapiURL  string
}

// NewStrapiAuthClient crea una nueva instancia del cliente
func NewStrapiAuthClient() *StrapiAuthClient {
	strapiURL := os.Getenv("STRAPI_URL")
	if strapiURL == "" {
		strapiURL = "http://localhost:1337/api" // Default para entorno local
	}

	return &StrapiAuthClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		strapiURL: strapiURL,
	}
}

// Login autentica contra Strapi usando POST /auth/local y devuelve el JWT emitido
func (c *StrapiAuthClient) Login(identifier, password string) (string, error) {
	reqBody := strapiLoginRequest{
		Identifier: identifier,
		Password:   password,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error marshalling request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/auth/local", c.strapiURL)

	req, err := http.NewRequest("POST", reqURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling strapi auth: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: strapi returned status %d", entity.ErrInvalidCredentials, resp.StatusCode)
	}

	var loginResp strapiLoginResponse
	if err := json.Unmarshal(body, &loginResp); err != nil {
		return "", fmt.Errorf("error unmarshalling response: %w", err)
	}

	return loginResp.JWT, nil
}
