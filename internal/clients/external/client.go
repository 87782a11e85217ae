// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/encounter-budget/internal/clients/external Client

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	internalDnd5e "github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

const (
	// DefaultBaseURL is the public D&D 5e API
	DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

	// maxSuggestions caps the monster IDs offered after a failed lookup
	maxSuggestions = 3

	// MetaSuggestions is the error metadata key holding suggested monster IDs
	MetaSuggestions = "suggestions"
)

// slugPattern matches characters that should be replaced in slugs
var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Client defines the interface for external API interactions
type Client interface {
	// GetMonsterData fetches a monster and its challenge rating
	GetMonsterData(ctx context.Context, monsterID string) (*MonsterData, error)

	// ListMonsters returns every monster in the catalog
	ListMonsters(ctx context.Context) ([]*MonsterReference, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.Field("CacheTTL", "must not be negative")
	}
	return vb.Build()
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

// toAPIFormat converts a free-form monster name or ID to the API index
// e.g., "Adult Red Dragon" -> "adult-red-dragon"
func toAPIFormat(id string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(id)), "-")
	return strings.Trim(slug, "-")
}

func (c *client) GetMonsterData(ctx context.Context, monsterID string) (*MonsterData, error) {
	apiID := toAPIFormat(monsterID)
	if apiID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	monster, err := c.dnd5eClient.GetMonster(apiID)
	if err != nil {
		return nil, c.lookupFailure(ctx, monsterID, apiID, err)
	}
	if monster == nil {
		return nil, errors.NotFoundf("monster %s not found", monsterID)
	}

	cr, ok := internalDnd5e.ChallengeRatingFromFloat(float64(monster.ChallengeRating))
	if !ok {
		return nil, errors.Internalf("monster %s has unsupported challenge rating %v",
			apiID, monster.ChallengeRating)
	}

	return &MonsterData{
		ID:              monster.Key,
		Name:            monster.Name,
		ChallengeRating: cr,
	}, nil
}

func (c *client) ListMonsters(_ context.Context) ([]*MonsterReference, error) {
	refs, err := c.dnd5eClient.ListMonsters()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list monsters from D&D 5e API")
	}

	monsters := make([]*MonsterReference, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		monsters = append(monsters, &MonsterReference{
			ID:   ref.Key,
			Name: ref.Name,
		})
	}
	return monsters, nil
}

// lookupFailure decides whether a failed lookup is an unknown monster or an
// unreachable API. Unknown monsters come back with the closest known IDs.
func (c *client) lookupFailure(ctx context.Context, monsterID, apiID string, cause error) error {
	known, err := c.ListMonsters(ctx)
	if err != nil {
		return errors.WrapWithCode(cause, errors.CodeUnavailable, "failed to get monster "+monsterID)
	}

	for _, ref := range known {
		if ref.ID == apiID {
			// the monster exists, so the lookup itself failed
			return errors.WrapWithCode(cause, errors.CodeUnavailable, "failed to get monster "+monsterID)
		}
	}

	suggestions := suggest(apiID, known, maxSuggestions)
	slog.Debug("unknown monster",
		"monster_id", monsterID,
		"suggestions", suggestions)

	return errors.NotFoundf("monster %s not found", monsterID).
		WithMeta(MetaSuggestions, suggestions)
}

// suggest returns up to limit known IDs closest to id by edit distance
func suggest(id string, known []*MonsterReference, limit int) []string {
	type candidate struct {
		id       string
		distance int
	}

	candidates := make([]candidate, 0, len(known))
	for _, ref := range known {
		candidates = append(candidates, candidate{
			id:       ref.ID,
			distance: levenshtein.ComputeDistance(id, ref.ID),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].id < candidates[j].id
	})

	suggestions := make([]string, 0, limit)
	for _, cand := range candidates {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, cand.id)
	}
	return suggestions
}
