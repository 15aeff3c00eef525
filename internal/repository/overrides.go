// Package repository persists the client-local override state: hidden event
// ids, the cached user profile and the text-generation API key. The
// decentralized store knows nothing about any of it. Each entry is one key
// with a whole-value replace on write.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	keyHiddenEvents = "hidden_events"
	keyUserProfile  = "user_profile"
	keyAPIKey       = "api_key"
)

type OverrideRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOverrideRepo(db *dbpg.DB) *OverrideRepository {
	return &OverrideRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OverrideRepository) get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM overrides WHERE key=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get override %s: %w", key, err)
	}

	var value string
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("scan override %s: %w", key, err)
	}

	return value, nil
}

func (r *OverrideRepository) set(ctx context.Context, key, value string) error {
	query := `INSERT INTO overrides (key, value, updated_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set override %s: %w", key, err)
	}

	return nil
}

// HiddenEventIDs returns the set of event ids this node has chosen never to
// display. A missing or corrupt value fails soft to an empty set.
func (r *OverrideRepository) HiddenEventIDs(ctx context.Context) []string {
	value, err := r.get(ctx, keyHiddenEvents)
	if err != nil || value == "" {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		return nil
	}
	return ids
}

func (r *OverrideRepository) HideEvent(ctx context.Context, id string) error {
	ids := r.HiddenEventIDs(ctx)
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return r.saveHidden(ctx, append(ids, id))
}

func (r *OverrideRepository) UnhideEvent(ctx context.Context, id string) error {
	ids := r.HiddenEventIDs(ctx)
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return r.saveHidden(ctx, kept)
}

func (r *OverrideRepository) saveHidden(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	value, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal hidden ids: %w", err)
	}
	return r.set(ctx, keyHiddenEvents, string(value))
}

// UserProfile returns the cached profile; missing or corrupt values yield an
// empty profile.
func (r *OverrideRepository) UserProfile(ctx context.Context) domain.UserProfile {
	value, err := r.get(ctx, keyUserProfile)
	if err != nil || value == "" {
		return domain.UserProfile{}
	}

	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		return domain.UserProfile{}
	}
	return profile
}

func (r *OverrideRepository) SaveUserProfile(ctx context.Context, profile domain.UserProfile) error {
	value, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return r.set(ctx, keyUserProfile, string(value))
}

func (r *OverrideRepository) APIKey(ctx context.Context) string {
	value, err := r.get(ctx, keyAPIKey)
	if err != nil {
		return ""
	}
	return value
}

func (r *OverrideRepository) SaveAPIKey(ctx context.Context, key string) error {
	return r.set(ctx, keyAPIKey, key)
}

func (r *OverrideRepository) HasAPIKey(ctx context.Context) bool {
	return r.APIKey(ctx) != ""
}
