package nostrstore

import (
	"context"
	"encoding/json"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Listen subscribes to new talks, votes and announcements on every relay and
// runs until the context is cancelled. Announcements feed the announcement
// cache. Talks and votes are only logged: the read path stays poll-driven,
// the subscription is not a refresh trigger.
func (s *Store) Listen(ctx context.Context) {
	since := nostr.Now()
	filters := nostr.Filters{{
		Kinds: []int{KindTalk, KindVote, KindAnnounce},
		Since: &since,
	}}

	for _, relay := range s.relays {
		sub, err := relay.Subscribe(ctx, filters)
		if err != nil {
			s.logger.Error("relay subscribe failed",
				logger.String("relay", relay.URL),
				logger.String("error", err.Error()),
			)
			continue
		}
		go s.consume(ctx, relay.URL, sub)
	}

	<-ctx.Done()
	s.logger.Info("store listener stopped")
}

func (s *Store) consume(ctx context.Context, relayURL string, sub *nostr.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events:
			if !ok {
				return
			}
			s.observe(ctx, relayURL, ev)
		}
	}
}

func (s *Store) observe(ctx context.Context, relayURL string, ev *nostr.Event) {
	switch ev.Kind {
	case KindAnnounce:
		var a domain.Announcement
		if err := json.Unmarshal([]byte(ev.Content), &a); err != nil {
			s.logger.Debug("dropping malformed announcement",
				logger.String("relay", relayURL),
				logger.String("id", ev.ID),
			)
			return
		}
		if err := s.cache.Put(ctx, a); err != nil {
			s.logger.Error("cache announcement failed",
				logger.String("event_id", a.ID),
				logger.String("error", err.Error()),
			)
			return
		}
		s.logger.Info("announcement observed",
			logger.String("event_id", a.ID),
			logger.String("title", a.Title),
		)
	case KindTalk:
		s.logger.Debug("new talk observed",
			logger.String("talk_id", ev.ID),
			logger.String("event_id", firstTag(ev, "e")),
		)
	case KindVote:
		s.logger.Debug("vote observed",
			logger.String("talk_id", firstTag(ev, "e")),
			logger.String("voter", ev.PubKey),
		)
	}
}
