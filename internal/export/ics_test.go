package export

import (
	"testing"
	"time"

	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventICS(t *testing.T) {
	event := &domain.Event{
		ID:          "e1",
		Title:       "GopherMeet",
		Description: "Lightning talks",
		EventDate:   "2026-10-01",
		Location:    "Berlin",
		Website:     "https://example.org",
	}

	data, err := EventICS(event)

	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:GopherMeet")
	assert.Contains(t, out, "LOCATION:Berlin")
	assert.Contains(t, out, "UID:e1")
}

func TestEventICS_FallsBackToRecordDate(t *testing.T) {
	event := &domain.Event{
		ID:    "e1",
		Title: "GopherMeet",
		Date:  time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
	}

	data, err := EventICS(event)

	require.NoError(t, err)
	assert.Contains(t, string(data), "DTSTART:20261001T180000Z")
}

func TestEventICS_NoDate(t *testing.T) {
	_, err := EventICS(&domain.Event{ID: "e1", Title: "no date"})

	require.Error(t, err)
}
