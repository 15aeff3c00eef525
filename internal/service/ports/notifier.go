package ports

import (
	"context"

	"github.com/stpnv0/TalkWave/internal/domain"
)

type TalkNotifier interface {
	NotifyTalkSubmitted(ctx context.Context, event *domain.Event, talk *domain.Talk)
	NotifyTalkAccepted(ctx context.Context, event *domain.Event, talk *domain.Talk)
}
