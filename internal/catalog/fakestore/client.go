// Package fakestore fetches the product collection from the remote catalog API.
//
// The remote source is read-only and supports no server-side filtering,
// sorting, or pagination: the full collection is fetched unconditionally and
// all derivation happens in the catalog store.
package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
	"github.com/sarthakbiswas97/ecommerce/internal/platform/timeouts"
)

// DefaultBaseURL is the public catalog API endpoint.
const DefaultBaseURL = "https://fakestoreapi.com"

// Client reads products from the remote catalog source.
type Client struct {
	baseURL string
	client  *http.Client
	tracer  trace.Tracer
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string, client *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: timeouts.Upstream}
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
		tracer:  otel.Tracer("catalog/fakestore"),
	}
}

// FetchProducts fetches the full product collection.
//
// The only two outcomes are a decoded collection or an error; a failed fetch
// never yields partial data.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	ctx, span := c.tracer.Start(ctx, "fakestore.FetchProducts")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build products request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, resp.Status)
		return nil, fmt.Errorf("fetch products: catalog source returned %s", resp.Status)
	}

	var products []catalog.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("decode products response: %w", err)
	}
	span.SetAttributes(attribute.Int("catalog.products", len(products)))
	return products, nil
}

// FetchProduct fetches the collection and locates a single product by id.
//
// The remote source is fetched in full and searched locally; a missing id
// surfaces catalog.ErrNotFound, distinct from a fetch failure.
func (c *Client) FetchProduct(ctx context.Context, id int) (catalog.Product, error) {
	products, err := c.FetchProducts(ctx)
	if err != nil {
		return catalog.Product{}, err
	}
	product, err := catalog.FindProduct(products, id)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("product %d: %w", id, err)
	}
	return product, nil
}
