// Package cj implements the supplier feed client for the CJ dropshipping API.
package cj

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/getpawsy/pawsy/internal/usecase/importer"
)

const defaultTimeout = 30 * time.Second

// Client fetches product feed pages over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a feed client. baseURL points at the supplier's product list
// endpoint.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// feedItemDTO mirrors the supplier's product list JSON.
type feedItemDTO struct {
	PID           string  `json:"pid"`
	ProductNameEn string  `json:"productNameEn"`
	ProductSKU    string  `json:"productSku"`
	SellPrice     float64 `json:"sellPrice"`
	CategoryName  string  `json:"categoryName"`
	ProductImage  string  `json:"productImage"`
	Description   string  `json:"description"`
	ProductWeight float64 `json:"productWeight"`
}

type feedResponseDTO struct {
	Data struct {
		List []feedItemDTO `json:"list"`
	} `json:"data"`
}

// Fetch implements importer.Supplier.
func (c *Client) Fetch(ctx context.Context, page, pageSize int) ([]importer.FeedItem, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}
	q := u.Query()
	q.Set("pageNum", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("CJ-Access-Token", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed returned %d: %s", resp.StatusCode, body)
	}

	var dto feedResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("decode feed page %d: %w", page, err)
	}

	items := make([]importer.FeedItem, len(dto.Data.List))
	for i, d := range dto.Data.List {
		items[i] = importer.FeedItem{
			ID:          d.PID,
			SKU:         d.ProductSKU,
			Name:        d.ProductNameEn,
			Description: d.Description,
			Category:    d.CategoryName,
			Image:       d.ProductImage,
			Price:       d.SellPrice,
			Weight:      d.ProductWeight,
		}
	}
	return items, nil
}
