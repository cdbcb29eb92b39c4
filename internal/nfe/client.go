// Package nfe integra com o serviço externo de emissão de NF-e de serviço.
package nfe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client chama a API de emissão. As falhas do serviço são repassadas ao
// chamador como vieram, sem retry.
type Client struct {
	CompanyID string
	APIKey    string

	baseURL    string
	httpClient *http.Client
}

func NewClient(companyID, apiKey string) *Client {
	return &Client{
		CompanyID:  companyID,
		APIKey:     apiKey,
		baseURL:    "https://api.nfe.io",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL existe para os testes apontarem para um servidor local.
func NewClientWithBaseURL(companyID, apiKey, baseURL string) *Client {
	c := NewClient(companyID, apiKey)
	c.baseURL = baseURL
	return c
}

// Resultado carrega a resposta do serviço: o status HTTP devolvido e o corpo
// decodificado (quando havia JSON válido).
type Resultado struct {
	StatusCode int
	Corpo      map[string]interface{}
}

// Emitir envia o payload já validado para a fila de emissão.
func (c *Client) Emitir(payload map[string]interface{}) (*Resultado, error) {
	corpo, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar payload da NF-e: %w", err)
	}

	url := fmt.Sprintf("%s/v1/companies/%s/serviceinvoices", c.baseURL, c.CompanyID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(corpo))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na requisição de emissão: %w", err)
	}
	defer resp.Body.Close()

	// O serviço às vezes devolve corpo vazio ou não-JSON; nesses casos o
	// resultado fica só com o status.
	resultado := &Resultado{StatusCode: resp.StatusCode}
	if texto, err := io.ReadAll(resp.Body); err == nil && len(texto) > 0 {
		var decodificado map[string]interface{}
		if json.Unmarshal(texto, &decodificado) == nil {
			resultado.Corpo = decodificado
		}
	}
	return resultado, nil
}
