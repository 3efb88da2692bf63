package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dexhub/pkg/models"
)

// DefaultBaseURL is the public PokeAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// ErrNotFound is returned when PokeAPI answers 404 for a resource.
var ErrNotFound = errors.New("pokeapi: not found")

// Client talks to the read-only PokeAPI REST interface.
type Client struct {
	BaseURL        string
	HTTP           *http.Client
	MaxConcurrency int      // batch fan-out limit
	Metrics        *Metrics // optional
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:        strings.TrimRight(baseURL, "/"),
		HTTP:           &http.Client{Timeout: timeout},
		MaxConcurrency: 16,
	}
}

func (c *Client) GetPokemon(ctx context.Context, idOrName string) (*models.Pokemon, error) {
	var p models.Pokemon
	if err := c.getJSON(ctx, "pokemon", c.resourceURL("pokemon", idOrName), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) GetSpecies(ctx context.Context, idOrName string) (*models.PokemonSpecies, error) {
	var s models.PokemonSpecies
	if err := c.getJSON(ctx, "pokemon-species", c.resourceURL("pokemon-species", idOrName), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetEvolutionChain fetches the chain at the absolute URL a species record
// points to.
func (c *Client) GetEvolutionChain(ctx context.Context, chainURL string) (*models.EvolutionChain, error) {
	if strings.TrimSpace(chainURL) == "" {
		return nil, fmt.Errorf("pokeapi: evolution chain: empty url")
	}
	var ch models.EvolutionChain
	if err := c.getJSON(ctx, "evolution-chain", chainURL, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (c *Client) ListPokemon(ctx context.Context, limit, offset int) (*models.ListResponse, error) {
	u, err := url.Parse(c.BaseURL + "/pokemon")
	if err != nil {
		return nil, fmt.Errorf("pokeapi: build list url: %w", err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	var resp models.ListResponse
	if err := c.getJSON(ctx, "pokemon-list", u.String(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type typeResponse struct {
	Name    string `json:"name"`
	Pokemon []struct {
		Slot    int                  `json:"slot"`
		Pokemon models.NamedResource `json:"pokemon"`
	} `json:"pokemon"`
}

// GetType returns every creature listed under the given type.
func (c *Client) GetType(ctx context.Context, name string) ([]models.NamedResource, error) {
	var resp typeResponse
	if err := c.getJSON(ctx, "type", c.resourceURL("type", name), &resp); err != nil {
		return nil, err
	}
	out := make([]models.NamedResource, 0, len(resp.Pokemon))
	for _, p := range resp.Pokemon {
		out = append(out, p.Pokemon)
	}
	return out, nil
}

// GetAbility accepts either an ability name or an absolute ability URL.
func (c *Client) GetAbility(ctx context.Context, nameOrURL string) (*Ability, error) {
	target := nameOrURL
	if !strings.Contains(nameOrURL, "http") {
		target = c.resourceURL("ability", nameOrURL)
	}
	body, err := c.get(ctx, "ability", target)
	if err != nil {
		return nil, err
	}
	return ParseAbility(body)
}

func (c *Client) resourceURL(resource, idOrName string) string {
	key := strings.ToLower(strings.TrimSpace(idOrName))
	return c.BaseURL + "/" + resource + "/" + url.PathEscape(key)
}

func (c *Client) getJSON(ctx context.Context, resource, target string, out any) error {
	body, err := c.get(ctx, resource, target)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("pokeapi: decode %s: %w", resource, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, resource, target string) ([]byte, error) {
	start := time.Now()
	outcome := "error"
	defer func() { c.Metrics.observe(resource, outcome, time.Since(start)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: request %s: %w", resource, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: read %s: %w", resource, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		outcome = "not_found"
		return nil, fmt.Errorf("%w: %s", ErrNotFound, target)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("pokeapi: %s: status %d: %s", resource, resp.StatusCode, truncate(body, 200))
	}

	outcome = "ok"
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
