package view

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHasVoted_VoterListCaseInsensitive(t *testing.T) {
	talk := &domain.Talk{VoterAddresses: []string{"0xABC"}}

	assert.True(t, HasVoted(talk, "0xabc"))
}

func TestHasVoted_FlagAloneSufficient(t *testing.T) {
	talk := &domain.Talk{UpvotedByMe: true}

	assert.True(t, HasVoted(talk, "0xdef"))
}

func TestHasVoted_NeitherSignal(t *testing.T) {
	talk := &domain.Talk{VoterAddresses: []string{"0xABC"}}

	assert.False(t, HasVoted(talk, "0xdef"))
}

func TestHasVoted_NoIdentity(t *testing.T) {
	talk := &domain.Talk{VoterAddresses: []string{"0xABC"}}

	assert.False(t, HasVoted(talk, ""))
	assert.True(t, HasVoted(&domain.Talk{UpvotedByMe: true}, ""))
}

func TestIsMyTalk_AddressMatch(t *testing.T) {
	talk := &domain.Talk{WalletAddress: "0xAbC"}

	assert.True(t, IsMyTalk(talk, "0xabc"))
	assert.False(t, IsMyTalk(talk, "0xdef"))
}

func TestIsMyTalk_FlagAloneSufficient(t *testing.T) {
	talk := &domain.Talk{IsAuthor: true}

	assert.True(t, IsMyTalk(talk, ""))
}

func TestSortTalks_VotesDescendingStable(t *testing.T) {
	talks := []*domain.Talk{
		{ID: "a", Votes: 2},
		{ID: "b", Votes: 5},
		{ID: "c", Votes: 2},
	}

	out := SortTalks(talks, SortVotes, nil)

	assert.Equal(t, []string{"b", "a", "c"}, ids(out))
	// input untouched
	assert.Equal(t, "a", talks[0].ID)
}

func TestSortTalks_TimeNewestFirst(t *testing.T) {
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	talks := []*domain.Talk{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(time.Hour)},
	}

	out := SortTalks(talks, SortTime, nil)

	assert.Equal(t, []string{"new", "old"}, ids(out))
}

func TestSortTalks_RandomKeepsAllTalks(t *testing.T) {
	talks := []*domain.Talk{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	out := SortTalks(talks, SortRandom, rand.New(rand.NewSource(1)))

	assert.ElementsMatch(t, ids(talks), ids(out))
}

func TestFilterEvents_All(t *testing.T) {
	events := []*domain.Event{{ID: "a"}, {ID: "b"}}

	assert.Len(t, FilterEvents(events, FilterAll, time.Now()), 2)
}

func TestFilterEvents_UpcomingPrefersEventDate(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	events := []*domain.Event{
		{ID: "past", Date: now.Add(-time.Hour)},
		{ID: "future-by-envelope", EventDate: "2026-07-01", Date: now.Add(-time.Hour)},
		{ID: "future-by-date", Date: now.Add(time.Hour)},
	}

	out := FilterEvents(events, FilterUpcoming, now)

	assert.Equal(t, []string{"future-by-envelope", "future-by-date"}, eventIDs(out))
}

func TestFilterEvents_Created(t *testing.T) {
	events := []*domain.Event{
		{ID: "mine", IsCreator: true},
		{ID: "other"},
	}

	out := FilterEvents(events, FilterCreated, time.Now())

	assert.Equal(t, []string{"mine"}, eventIDs(out))
}

func TestFilterEvents_Submitted(t *testing.T) {
	events := []*domain.Event{
		{ID: "with-my-talk", Talks: []*domain.Talk{{IsAuthor: true}}},
		{ID: "without", Talks: []*domain.Talk{{}}},
	}

	out := FilterEvents(events, FilterSubmitted, time.Now())

	assert.Equal(t, []string{"with-my-talk"}, eventIDs(out))
}

func TestFilterEvents_Voted(t *testing.T) {
	events := []*domain.Event{
		{ID: "voted", Talks: []*domain.Talk{{UpvotedByMe: true}}},
		{ID: "not-voted"},
	}

	out := FilterEvents(events, FilterVoted, time.Now())

	assert.Equal(t, []string{"voted"}, eventIDs(out))
}

func ids(talks []*domain.Talk) []string {
	out := make([]string, 0, len(talks))
	for _, t := range talks {
		out = append(out, t.ID)
	}
	return out
}

func eventIDs(events []*domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}
