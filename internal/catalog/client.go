// Package catalog implements the read-only client for the external
// product catalog source. The source owns the three read operations the
// storefront needs: list categories, list products in a category, and
// list all products. Failures surface as wrapped errors; the engine never
// sees this package.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// maxBodyBytes caps catalog response bodies.
const maxBodyBytes = 4 << 20

// Client is a throttled HTTP client for the catalog source.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	log        *zap.SugaredLogger
}

// New creates a catalog client for the given base URL.
func New(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		// 5 req/s with burst of 10 keeps the client polite toward the
		// public catalog endpoints.
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		log:     log,
	}
}

// Categories lists all catalog categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "/products/categories")
	if err != nil {
		return nil, err
	}
	var categories []string
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

// Products lists every product in the catalog.
func (c *Client) Products(ctx context.Context) ([]types.Product, error) {
	return c.fetchProducts(ctx, "/products")
}

// ProductsByCategory lists the products in one category.
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]types.Product, error) {
	return c.fetchProducts(ctx, "/products/category/"+url.PathEscape(category))
}

func (c *Client) fetchProducts(ctx context.Context, path string) ([]types.Product, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var records []productRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	products := make([]types.Product, 0, len(records))
	for _, r := range records {
		products = append(products, r.toProduct())
	}
	return products, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("catalog rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warnw("catalog request failed", "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("catalog request %s: status %d", path, resp.StatusCode)
	}
	return body, nil
}

// productRecord mirrors the catalog source's wire format, where product
// IDs arrive as JSON numbers.
type productRecord struct {
	ID          json.Number     `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Stock       int64           `json:"stock"`
}

func (r productRecord) toProduct() types.Product {
	return types.Product{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		Stock:       r.Stock,
	}
}
