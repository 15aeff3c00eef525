package ports

import (
	"context"

	"github.com/stpnv0/TalkWave/internal/domain"
)

// TalkStore is the decentralized publish/subscribe store holding the
// authoritative event and talk data. GetEvents returns materialized records
// only; the announcement channel is exposed separately.
type TalkStore interface {
	GetEvents(ctx context.Context) ([]*domain.Event, error)
	GetEventByID(ctx context.Context, id string) (*domain.Event, error)
	GetTalks(ctx context.Context, eventID string) ([]*domain.Talk, error)

	PublishEvent(ctx context.Context, title, description string, useExternalWallet bool) (string, error)
	SubmitTalk(ctx context.Context, eventID, payload string, useExternalWallet bool) (string, error)
	VoteTalk(ctx context.Context, eventID, talkID string) error
	CloseEvent(ctx context.Context, eventID string) error
	AcceptTalk(ctx context.Context, eventID, talkID, feedback string) error
	AnnounceEvent(ctx context.Context, a domain.Announcement) error

	// Identity returns the current wallet address, empty when no key is
	// configured.
	Identity() string
	ResolveName(ctx context.Context, address string) (string, error)
}
