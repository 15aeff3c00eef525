package service

import "github.com/stpnv0/TalkWave/internal/domain"

// mergeAnnounced reconciles the two event sources: every materialized record
// is kept unchanged, an announced record is kept only when no materialized
// record shares its id, and every kept announced record is marked Announced.
// Ids duplicated within the announcement channel itself both pass through;
// de-duplication is materialized-vs-announced only.
func mergeAnnounced(materialized []*domain.Event, announced []domain.Announcement) []*domain.Event {
	out := make([]*domain.Event, 0, len(materialized)+len(announced))
	out = append(out, materialized...)

	seen := make(map[string]struct{}, len(materialized))
	for _, e := range materialized {
		seen[e.ID] = struct{}{}
	}

	for _, a := range announced {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		e := a.Event()
		e.Announced = true
		out = append(out, e)
	}

	return out
}

// dropHidden removes the events this node has chosen never to display.
func dropHidden(events []*domain.Event, hiddenIDs []string) []*domain.Event {
	if len(hiddenIDs) == 0 {
		return events
	}

	hidden := make(map[string]struct{}, len(hiddenIDs))
	for _, id := range hiddenIDs {
		hidden[id] = struct{}{}
	}

	out := events[:0]
	for _, e := range events {
		if _, ok := hidden[e.ID]; !ok {
			out = append(out, e)
		}
	}
	return out
}
