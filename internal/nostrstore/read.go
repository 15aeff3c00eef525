package nostrstore

import (
	"context"
	"encoding/json"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stpnv0/TalkWave/internal/domain"
)

// GetEvents returns every materialized event with its full talk list. Talks,
// votes, closes and accepts are fetched in bulk and joined locally.
func (s *Store) GetEvents(ctx context.Context) ([]*domain.Event, error) {
	raw := s.query(ctx, "get_events", nostr.Filter{
		Kinds: []int{KindCFPEvent},
		Limit: s.queryLimit,
	})

	events := make([]*domain.Event, 0, len(raw))
	for _, ev := range raw {
		events = append(events, s.buildEvent(ev))
	}

	s.hydrate(ctx, events)
	return events, nil
}

// GetEventByID returns one materialized event, nil when it does not exist.
func (s *Store) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	raw := s.query(ctx, "get_event", nostr.Filter{
		IDs:   []string{id},
		Kinds: []int{KindCFPEvent},
		Limit: 1,
	})
	if len(raw) == 0 {
		return nil, nil
	}

	event := s.buildEvent(raw[0])
	s.hydrate(ctx, []*domain.Event{event})
	return event, nil
}

func (s *Store) GetTalks(ctx context.Context, eventID string) ([]*domain.Talk, error) {
	event, err := s.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return event.Talks, nil
}

func (s *Store) buildEvent(ev *nostr.Event) *domain.Event {
	var content eventContent
	if err := json.Unmarshal([]byte(ev.Content), &content); err != nil {
		// older clients published the title bare
		content = eventContent{Title: ev.Content}
	}

	return &domain.Event{
		ID:           ev.ID,
		Title:        content.Title,
		Description:  content.Description,
		OwnerAddress: ev.PubKey,
		IsCreator:    s.mine(ev.PubKey),
		Date:         ev.CreatedAt.Time(),
		Enabled:      true,
		Talks:        []*domain.Talk{},
	}
}

// hydrate attaches talks, vote counts, close markers and accept answers to
// the given events. Closes and accepts only count when signed by the event
// owner.
func (s *Store) hydrate(ctx context.Context, events []*domain.Event) {
	if len(events) == 0 {
		return
	}

	byID := make(map[string]*domain.Event, len(events))
	eventIDs := make([]string, 0, len(events))
	for _, e := range events {
		byID[e.ID] = e
		eventIDs = append(eventIDs, e.ID)
	}

	talkOwner := make(map[string]*domain.Event)
	var talkIDs []string
	for _, ev := range s.query(ctx, "get_talks", nostr.Filter{
		Kinds: []int{KindTalk},
		Tags:  nostr.TagMap{"e": eventIDs},
		Limit: s.queryLimit,
	}) {
		event, ok := byID[firstTag(ev, "e")]
		if !ok {
			continue
		}
		talk := &domain.Talk{
			ID:             ev.ID,
			Payload:        ev.Content,
			WalletAddress:  ev.PubKey,
			IsAuthor:       s.mine(ev.PubKey),
			CreatedAt:      ev.CreatedAt.Time(),
			VoterAddresses: []string{},
		}
		event.Talks = append(event.Talks, talk)
		talkOwner[talk.ID] = event
		talkIDs = append(talkIDs, talk.ID)
	}

	for _, ev := range s.query(ctx, "get_closes", nostr.Filter{
		Kinds: []int{KindClose},
		Tags:  nostr.TagMap{"e": eventIDs},
		Limit: s.queryLimit,
	}) {
		if event, ok := byID[firstTag(ev, "e")]; ok && ev.PubKey == event.OwnerAddress {
			event.Enabled = false
		}
	}

	if len(talkIDs) == 0 {
		return
	}

	talks := make(map[string]*domain.Talk, len(talkIDs))
	for _, e := range events {
		for _, t := range e.Talks {
			talks[t.ID] = t
		}
	}

	// one vote per voter per talk
	voted := make(map[string]map[string]struct{})
	for _, ev := range s.query(ctx, "get_votes", nostr.Filter{
		Kinds: []int{KindVote},
		Tags:  nostr.TagMap{"e": talkIDs},
		Limit: s.queryLimit,
	}) {
		talk, ok := talks[firstTag(ev, "e")]
		if !ok {
			continue
		}
		if voted[talk.ID] == nil {
			voted[talk.ID] = make(map[string]struct{})
		}
		if _, dup := voted[talk.ID][ev.PubKey]; dup {
			continue
		}
		voted[talk.ID][ev.PubKey] = struct{}{}

		talk.VoterAddresses = append(talk.VoterAddresses, ev.PubKey)
		talk.Votes++
		if s.mine(ev.PubKey) {
			talk.UpvotedByMe = true
		}
	}

	for _, ev := range s.query(ctx, "get_accepts", nostr.Filter{
		Kinds: []int{KindAccept},
		Tags:  nostr.TagMap{"e": talkIDs},
		Limit: s.queryLimit,
	}) {
		talk, ok := talks[firstTag(ev, "e")]
		if !ok {
			continue
		}
		event := talkOwner[talk.ID]
		if event == nil || ev.PubKey != event.OwnerAddress {
			continue
		}
		if talk.Answer == "" {
			talk.Answer = ev.Content
			if talk.Answer == "" {
				talk.Answer = "Accepted"
			}
		}
	}
}
