package view

import (
	"math/rand"
	"sort"
	"time"

	"github.com/stpnv0/TalkWave/internal/domain"
)

type SortOrder string

const (
	SortVotes  SortOrder = "votes"
	SortTime   SortOrder = "time"
	SortRandom SortOrder = "random"
)

type EventFilter string

const (
	FilterAll       EventFilter = "all"
	FilterUpcoming  EventFilter = "upcoming"
	FilterCreated   EventFilter = "created"
	FilterSubmitted EventFilter = "submitted"
	FilterVoted     EventFilter = "voted"
)

// SortTalks returns a new slice ordered by the requested option. Vote and
// time orderings are stable (equal keys keep input order). Random is a fresh
// shuffle on every call; rng may be nil, in which case the process-global
// source is used.
func SortTalks(talks []*domain.Talk, order SortOrder, rng *rand.Rand) []*domain.Talk {
	out := make([]*domain.Talk, len(talks))
	copy(out, talks)

	switch order {
	case SortVotes:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Votes > out[j].Votes
		})
	case SortTime:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortRandom:
		swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
		if rng != nil {
			rng.Shuffle(len(out), swap)
		} else {
			rand.Shuffle(len(out), swap)
		}
	}

	return out
}

// FilterEvents returns the events matching the filter as of the given time.
// The identity-dependent filters evaluate naturally (possibly to nothing)
// when the data was produced without a connected identity.
func FilterEvents(events []*domain.Event, filter EventFilter, now time.Time) []*domain.Event {
	if filter == FilterAll || filter == "" {
		return events
	}

	out := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if matchesFilter(e, filter, now) {
			out = append(out, e)
		}
	}
	return out
}

func matchesFilter(e *domain.Event, filter EventFilter, now time.Time) bool {
	switch filter {
	case FilterUpcoming:
		return !eventTime(e).Before(now)
	case FilterCreated:
		return e.IsCreator
	case FilterSubmitted:
		for _, t := range e.Talks {
			if t.IsMine || t.IsAuthor {
				return true
			}
		}
	case FilterVoted:
		for _, t := range e.Talks {
			if t.HasVoted || t.UpvotedByMe {
				return true
			}
		}
	}
	return false
}

// eventTime prefers the extended EventDate over the raw record timestamp.
func eventTime(e *domain.Event) time.Time {
	if e.EventDate != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
			if ts, err := time.Parse(layout, e.EventDate); err == nil {
				return ts
			}
		}
	}
	return e.Date
}
