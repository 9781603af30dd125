// Package characterapi is the outbound adapter for the character service's
// own REST API. It translates between the API's JSON contract and domain
// types so the CLI and the seeder can work against a running server.
package characterapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

const collectionPath = "/api/characters"

// Compile-time interface checks.
var (
	_ ports.CharacterClient = (*Client)(nil)
	_ ports.HealthChecker   = (*Client)(nil)
)

// Client implements ports.CharacterClient over HTTP. The underlying
// httpclient.Client supplies the breaker, retries, tracing, and rate limit.
type Client struct {
	http *httpclient.Client
	req  *requester
}

// New creates a Client that sends requests through hc.
func New(hc *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{http: hc, req: &requester{client: hc, logger: logger}}
}

// ListCharacters calls GET /api/characters.
func (c *Client) ListCharacters(ctx context.Context) ([]character.Character, error) {
	var dto listResponseDTO
	if err := c.req.do(ctx, http.MethodGet, collectionPath, nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// GetCharacter calls GET /api/characters/{id}. A 404 yields domain.ErrNotFound.
func (c *Client) GetCharacter(ctx context.Context, id character.ID) (*character.Character, error) {
	var dto characterDTO
	if err := c.req.do(ctx, http.MethodGet, itemPath(id), nil, &dto); err != nil {
		return nil, err
	}
	return toPointer(dto.toDomain())
}

// CreateCharacter calls POST /api/characters.
func (c *Client) CreateCharacter(ctx context.Context, cmd character.CreateCommand) (*character.Character, error) {
	var dto characterDTO
	if err := c.req.do(ctx, http.MethodPost, collectionPath, toCreateRequest(cmd), &dto); err != nil {
		return nil, err
	}
	return toPointer(dto.toDomain())
}

// UpdateCharacter calls PUT /api/characters/{id} with the id repeated in the
// body, as the API requires.
func (c *Client) UpdateCharacter(ctx context.Context, cmd character.UpdateCommand) (*character.Character, error) {
	var dto characterDTO
	if err := c.req.do(ctx, http.MethodPut, itemPath(cmd.ID), toUpdateRequest(cmd), &dto); err != nil {
		return nil, err
	}
	return toPointer(dto.toDomain())
}

// DeleteCharacter calls DELETE /api/characters/{id}. The API confirms
// deletion whether or not the character existed.
func (c *Client) DeleteCharacter(ctx context.Context, id character.ID) error {
	return c.req.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the breaker state of the underlying client.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

func itemPath(id character.ID) string {
	return collectionPath + "/" + url.PathEscape(id.String())
}

func toPointer(c character.Character, err error) (*character.Character, error) {
	if err != nil {
		return nil, err
	}
	return &c, nil
}
