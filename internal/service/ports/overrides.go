package ports

import (
	"context"

	"github.com/stpnv0/TalkWave/internal/domain"
)

// OverrideStore holds the client-local state the decentralized store knows
// nothing about. Reads fail soft: corrupt or missing values come back as the
// empty set/profile, never as an error.
type OverrideStore interface {
	HiddenEventIDs(ctx context.Context) []string
	HideEvent(ctx context.Context, id string) error
	UnhideEvent(ctx context.Context, id string) error

	UserProfile(ctx context.Context) domain.UserProfile
	SaveUserProfile(ctx context.Context, profile domain.UserProfile) error

	APIKey(ctx context.Context) string
	SaveAPIKey(ctx context.Context, key string) error
	HasAPIKey(ctx context.Context) bool
}
