package ports

import (
	"context"

	"github.com/stpnv0/TalkWave/internal/domain"
)

// AnnouncementCache is the process-wide cache of events seen on the global
// announcement channel.
type AnnouncementCache interface {
	Put(ctx context.Context, a domain.Announcement) error
	All(ctx context.Context) ([]domain.Announcement, error)
}
