package productclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/order/application"
)

const defaultTimeout = 5 * time.Second

// Client resolves product metadata from the product directory's HTTP
// boundary. The directory answers GET /products/{key} with a one-element
// list for known keys and an empty list otherwise.
type Client struct {
	log     *slog.Logger
	baseURL string
	hc      *http.Client
}

func New(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		log:     log,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

type productPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (c *Client) Fetch(ctx context.Context, productID string) (application.ProductInfo, error) {
	endpoint := c.baseURL + "/products/" + url.PathEscape(productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return application.ProductInfo{}, fmt.Errorf("%w: %v", application.ErrProductUnavailable, err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("product lookup failed", "product_id", productID, "err", err)
		return application.ProductInfo{}, fmt.Errorf("%w: %v", application.ErrProductUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return application.ProductInfo{}, fmt.Errorf("%w: %s (status %d)", application.ErrProductNotFound, productID, resp.StatusCode)
	}

	var products []productPayload
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return application.ProductInfo{}, fmt.Errorf("%w: %v", application.ErrMalformedProduct, err)
	}
	if len(products) == 0 {
		return application.ProductInfo{}, fmt.Errorf("%w: %s", application.ErrProductNotFound, productID)
	}

	p := products[0]
	return application.ProductInfo{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}, nil
}
