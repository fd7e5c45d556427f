// Package client consumes the remote stock and catalog service over its REST
// interface: GET {base}/stock/{id} and GET {base}/products/{id}, both JSON.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Client implements port.StockSource and port.CatalogSource. The service
// carries bare price numbers, so the display currency is fixed per client.
type Client struct {
	baseURL  string
	hc       *http.Client
	currency currency.Unit
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithCurrency sets the display currency attached to catalog prices.
func WithCurrency(unit currency.Unit) Option {
	return func(c *Client) {
		c.currency = unit
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}

	c := &Client{
		baseURL:  baseURL,
		hc:       &http.Client{Timeout: 10 * time.Second},
		currency: currency.USD,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type stockResponse struct {
	ID     uuid.UUID `json:"id"`
	Amount int       `json:"amount"`
}

type productResponse struct {
	ID    uuid.UUID       `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// GetStock queries the current availability of a product.
func (c *Client) GetStock(ctx context.Context, productID uuid.UUID) (domain.StockInfo, error) {
	var resp stockResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/stock/%s", c.baseURL, productID), &resp); err != nil {
		return domain.StockInfo{}, fmt.Errorf("getJSON: %w", err)
	}

	return domain.StockInfo{
		ProductID: resp.ID,
		Available: resp.Amount,
	}, nil
}

// GetProduct resolves a product's display attributes.
func (c *Client) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	var resp productResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/products/%s", c.baseURL, productID), &resp); err != nil {
		return domain.Product{}, fmt.Errorf("getJSON: %w", err)
	}

	return domain.Product{
		ProductID: resp.ID,
		Title:     resp.Title,
		Price:     domain.Money{Amount: resp.Price, Currency: c.currency},
		ImageRef:  resp.Image,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("hc.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
