// Package unsplash busca uma imagem de capa para o destino da viagem.
// O uso é decorativo: qualquer falha vira apenas uma capa ausente.
package unsplash

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	AccessKey string

	baseURL    string
	httpClient *http.Client
}

func NewClient(accessKey string) *Client {
	return &Client{
		AccessKey:  accessKey,
		baseURL:    "https://api.unsplash.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL existe para os testes apontarem para um servidor local.
func NewClientWithBaseURL(accessKey, baseURL string) *Client {
	c := NewClient(accessKey)
	c.baseURL = baseURL
	return c
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// BuscarImagem devolve a URL da primeira foto encontrada para a consulta, ou
// vazio quando não há resultado.
func (c *Client) BuscarImagem(consulta string) (string, error) {
	endpoint := fmt.Sprintf("%s/search/photos?query=%s&per_page=1&page=1", c.baseURL, url.QueryEscape(consulta))
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.AccessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na busca de imagem: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("busca de imagem falhou com status %d", resp.StatusCode)
	}

	var corpo searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&corpo); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta: %w", err)
	}
	if len(corpo.Results) == 0 {
		return "", nil
	}
	return corpo.Results[0].URLs.Regular, nil
}
