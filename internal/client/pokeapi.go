package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokedex/app/internal/config"
	"pokedex/app/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

type PokeAPIClient interface {
	FetchListPage(ctx context.Context, limit, offset int) (*domain.PokemonListPage, error)
	FetchDetail(ctx context.Context, name string) (*domain.PokemonDetail, error)
	Close() error
}

type pokeAPIClient struct {
	baseURL    string
	httpClient *resty.Client
}

func NewPokeAPIClient(cfg config.PokeAPIConfig) PokeAPIClient {
	return &pokeAPIClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: newRestyClient(cfg, "application/json"),
	}
}

func newRestyClient(cfg config.PokeAPIConfig, accept string) *resty.Client {
	return resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", accept)
}

func (c *pokeAPIClient) FetchListPage(ctx context.Context, limit, offset int) (*domain.PokemonListPage, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	if offset < 0 {
		return nil, fmt.Errorf("offset must not be negative, got %d", offset)
	}

	endpoint := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)

	body, err := c.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var page domain.PokemonListPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &DecodeError{URL: endpoint, Err: err}
	}
	if page.Results == nil {
		return nil, &DecodeError{URL: endpoint, Err: errors.New("missing results field")}
	}

	log.Debugf("Fetched list page limit=%d offset=%d with %d results", limit, offset, len(page.Results))
	return &page, nil
}

func (c *pokeAPIClient) FetchDetail(ctx context.Context, name string) (*domain.PokemonDetail, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("pokemon name cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(name))

	body, err := c.fetch(ctx, endpoint)
	if err != nil {
		var transportErr *TransportError
		if errors.As(err, &transportErr) && transportErr.StatusCode == http.StatusNotFound {
			return nil, &NotFoundError{Name: name}
		}
		return nil, err
	}

	var detail domain.PokemonDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, &DecodeError{URL: endpoint, Err: err}
	}
	if detail.Name == "" {
		return nil, &DecodeError{URL: endpoint, Err: errors.New("missing name field")}
	}
	detail.Raw = body

	log.Debugf("Fetched details for %s", name)
	return &detail, nil
}

func (c *pokeAPIClient) Close() error {
	return c.httpClient.Close()
}

func (c *pokeAPIClient) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	return get(ctx, c.httpClient, endpoint)
}

// get performs a single GET and maps every failure to a TransportError.
func get(ctx context.Context, httpClient *resty.Client, endpoint string) ([]byte, error) {
	resp, err := httpClient.R().
		SetContext(ctx).
		Get(endpoint)

	if err != nil {
		if ctx.Err() != nil {
			return nil, &TransportError{URL: endpoint, Err: fmt.Errorf("request cancelled: %w", ctx.Err())}
		}
		return nil, &TransportError{URL: endpoint, Err: err}
	}

	if status := resp.StatusCode(); status < 200 || status > 299 {
		return nil, &TransportError{
			URL:        endpoint,
			StatusCode: status,
			Err:        fmt.Errorf("HTTP error: %s", resp.Status()),
		}
	}

	return resp.Bytes(), nil
}
