package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/panisul/gestao/internal/domain/client"
	"github.com/panisul/gestao/internal/domain/product"
	"github.com/panisul/gestao/internal/domain/sale"
	"github.com/panisul/gestao/internal/domain/swap"
)

const defaultTimeout = 10 * time.Second

// Client acessa a API de registros por HTTP. A API vive em outro processo
// e mantém cópias próprias das coleções; este cliente apenas lista e
// acrescenta registros, sem qualquer outra operação.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient cria um cliente para a API de registros na URL base informada
// (por exemplo "http://localhost:8080/api/v1").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// ListProducts lista todos os produtos registrados
func (c *Client) ListProducts(ctx context.Context) ([]product.Product, error) {
	var out []product.Product
	if err := c.get(ctx, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct acrescenta um produto ao registro
func (c *Client) CreateProduct(ctx context.Context, p product.Product) error {
	return c.post(ctx, "/products", p)
}

// ListClients lista todos os clientes registrados
func (c *Client) ListClients(ctx context.Context) ([]client.Client, error) {
	var out []client.Client
	if err := c.get(ctx, "/clients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateClient acrescenta um cliente ao registro
func (c *Client) CreateClient(ctx context.Context, cl client.Client) error {
	return c.post(ctx, "/clients", cl)
}

// ListSales lista todas as vendas registradas
func (c *Client) ListSales(ctx context.Context) ([]sale.Sale, error) {
	var out []sale.Sale
	if err := c.get(ctx, "/sales", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSale acrescenta uma venda ao registro
func (c *Client) CreateSale(ctx context.Context, s sale.Sale) error {
	return c.post(ctx, "/sales", s)
}

// ListSwaps lista todas as trocas registradas
func (c *Client) ListSwaps(ctx context.Context) ([]swap.Swap, error) {
	var out []swap.Swap
	if err := c.get(ctx, "/swaps", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSwap acrescenta uma troca ao registro
func (c *Client) CreateSwap(ctx context.Context, s swap.Swap) error {
	return c.post(ctx, "/swaps", s)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status inesperado %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("POST %s: status inesperado %d", path, resp.StatusCode)
	}

	return nil
}
