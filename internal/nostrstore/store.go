// Package nostrstore adapts a set of Nostr relays into the decentralized
// talk store. Events, talks, votes, closes, accepts and announcements are
// each a dedicated event kind; the relay set is the authority for all of
// them.
package nostrstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/stpnv0/TalkWave/internal/metrics"
	"github.com/stpnv0/TalkWave/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	KindProfile  = 0
	KindCFPEvent = 30420
	KindTalk     = 30421
	KindVote     = 30422
	KindClose    = 30423
	KindAccept   = 30424
	KindAnnounce = 30425
)

const defaultQueryLimit = 500

type Config struct {
	Relays      []string
	PrivateKey  string
	ExternalKey string
	QueryLimit  int
}

type Store struct {
	relays []*nostr.Relay

	sk string
	pk string

	// optional second signing key, the "external wallet" of the UI
	externalSK string
	externalPK string

	cache      ports.AnnouncementCache
	logger     logger.Logger
	queryLimit int
}

// Connect dials every configured relay and derives the signing identities.
// At least one relay must be reachable. A missing private key gets a fresh
// throwaway one so reads still work.
func Connect(ctx context.Context, cfg Config, cache ports.AnnouncementCache, log logger.Logger) (*Store, error) {
	s := &Store{
		cache:      cache,
		logger:     log,
		queryLimit: cfg.QueryLimit,
	}
	if s.queryLimit <= 0 {
		s.queryLimit = defaultQueryLimit
	}

	s.sk = cfg.PrivateKey
	if s.sk == "" {
		s.sk = nostr.GeneratePrivateKey()
		log.Warn("no private key configured, generated an ephemeral identity")
	}
	pk, err := nostr.GetPublicKey(s.sk)
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}
	s.pk = pk

	if cfg.ExternalKey != "" {
		s.externalSK = cfg.ExternalKey
		epk, err := nostr.GetPublicKey(s.externalSK)
		if err != nil {
			return nil, fmt.Errorf("derive external public key: %w", err)
		}
		s.externalPK = epk
	}

	for _, url := range cfg.Relays {
		relay, err := nostr.RelayConnect(ctx, url)
		if err != nil {
			log.Error("relay connect failed",
				logger.String("relay", url),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.relays = append(s.relays, relay)
	}
	if len(s.relays) == 0 {
		return nil, fmt.Errorf("connect store: %w", domain.ErrNoRelays)
	}

	log.Info("store connected",
		logger.Int("relays", len(s.relays)),
		logger.String("identity", s.pk),
	)

	return s, nil
}

func (s *Store) Close() {
	for _, r := range s.relays {
		r.Close()
	}
}

// Identity returns the current wallet address (the primary public key).
func (s *Store) Identity() string {
	return s.pk
}

// mine reports whether an address is one of our signing identities.
func (s *Store) mine(address string) bool {
	return address == s.pk || (s.externalPK != "" && address == s.externalPK)
}

// query runs a filter against every relay and de-duplicates by event id.
func (s *Store) query(ctx context.Context, op string, filter nostr.Filter) []*nostr.Event {
	metrics.StoreRequests.WithLabelValues(op).Inc()

	seen := make(map[string]struct{})
	var out []*nostr.Event
	for _, relay := range s.relays {
		evs, err := relay.QuerySync(ctx, filter)
		if err != nil {
			metrics.StoreErrors.WithLabelValues(op).Inc()
			s.logger.Error("relay query failed",
				logger.String("relay", relay.URL),
				logger.String("op", op),
				logger.String("error", err.Error()),
			)
			continue
		}
		for _, ev := range evs {
			if _, ok := seen[ev.ID]; ok {
				continue
			}
			seen[ev.ID] = struct{}{}
			out = append(out, ev)
		}
	}
	return out
}

// publish signs the event and sends it to every relay. Success means at
// least one relay accepted it.
func (s *Store) publish(ctx context.Context, op string, ev *nostr.Event, useExternalWallet bool) error {
	metrics.StoreRequests.WithLabelValues(op).Inc()

	sk := s.sk
	if useExternalWallet && s.externalSK != "" {
		sk = s.externalSK
	}

	ev.CreatedAt = nostr.Now()
	if err := ev.Sign(sk); err != nil {
		metrics.StoreErrors.WithLabelValues(op).Inc()
		return fmt.Errorf("sign %s: %w", op, err)
	}

	accepted := false
	for _, relay := range s.relays {
		if err := relay.Publish(ctx, *ev); err != nil {
			s.logger.Warn("relay publish failed",
				logger.String("relay", relay.URL),
				logger.String("op", op),
				logger.String("error", err.Error()),
			)
			continue
		}
		accepted = true
	}
	if !accepted {
		metrics.StoreErrors.WithLabelValues(op).Inc()
		return domain.ErrNoRelays
	}
	return nil
}

// eventContent is the flat title/description pair the store knows. All
// richer event metadata travels inside the description envelope put there by
// the sync layer.
type eventContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Store) PublishEvent(ctx context.Context, title, description string, useExternalWallet bool) (string, error) {
	content, err := json.Marshal(eventContent{Title: title, Description: description})
	if err != nil {
		return "", fmt.Errorf("marshal event content: %w", err)
	}

	ev := &nostr.Event{Kind: KindCFPEvent, Content: string(content)}
	if err := s.publish(ctx, "publish_event", ev, useExternalWallet); err != nil {
		return "", err
	}
	return ev.ID, nil
}

func (s *Store) SubmitTalk(ctx context.Context, eventID, payload string, useExternalWallet bool) (string, error) {
	ev := &nostr.Event{
		Kind:    KindTalk,
		Content: payload,
		Tags:    nostr.Tags{nostr.Tag{"e", eventID}},
	}
	if err := s.publish(ctx, "submit_talk", ev, useExternalWallet); err != nil {
		return "", err
	}
	return ev.ID, nil
}

func (s *Store) VoteTalk(ctx context.Context, eventID, talkID string) error {
	ev := &nostr.Event{
		Kind: KindVote,
		Tags: nostr.Tags{nostr.Tag{"e", talkID}, nostr.Tag{"a", eventID}},
	}
	return s.publish(ctx, "vote_talk", ev, false)
}

func (s *Store) CloseEvent(ctx context.Context, eventID string) error {
	ev := &nostr.Event{
		Kind: KindClose,
		Tags: nostr.Tags{nostr.Tag{"e", eventID}},
	}
	return s.publish(ctx, "close_event", ev, false)
}

func (s *Store) AcceptTalk(ctx context.Context, eventID, talkID, feedback string) error {
	ev := &nostr.Event{
		Kind:    KindAccept,
		Content: feedback,
		Tags:    nostr.Tags{nostr.Tag{"e", talkID}, nostr.Tag{"a", eventID}},
	}
	return s.publish(ctx, "accept_talk", ev, false)
}

// AnnounceEvent broadcasts the announcement and seeds the local cache so the
// announcing node sees its own event immediately.
func (s *Store) AnnounceEvent(ctx context.Context, a domain.Announcement) error {
	content, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal announcement: %w", err)
	}

	ev := &nostr.Event{Kind: KindAnnounce, Content: string(content)}
	if err := s.publish(ctx, "announce_event", ev, false); err != nil {
		return err
	}

	if err := s.cache.Put(ctx, a); err != nil {
		s.logger.Warn("seed announcement cache failed",
			logger.String("event_id", a.ID),
			logger.String("error", err.Error()),
		)
	}
	return nil
}

// ResolveName looks up the profile name for an address, the analogue of an
// external wallet's name registry.
func (s *Store) ResolveName(ctx context.Context, address string) (string, error) {
	if address == "" {
		return "", nil
	}

	evs := s.query(ctx, "resolve_name", nostr.Filter{
		Kinds:   []int{KindProfile},
		Authors: []string{address},
		Limit:   1,
	})
	if len(evs) == 0 {
		return "", nil
	}

	var profile struct {
		Name        string `json:"name"`
		DisplayName string `json:"display_name"`
	}
	if err := json.Unmarshal([]byte(evs[0].Content), &profile); err != nil {
		return "", fmt.Errorf("decode profile: %w", err)
	}
	if profile.DisplayName != "" {
		return profile.DisplayName, nil
	}
	return profile.Name, nil
}

func firstTag(ev *nostr.Event, name string) string {
	for _, tag := range ev.Tags {
		if len(tag) >= 2 && tag[0] == name {
			return tag[1]
		}
	}
	return ""
}
