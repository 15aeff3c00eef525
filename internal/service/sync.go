package service

import (
	"context"
	"time"

	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/stpnv0/TalkWave/internal/payload"
	"github.com/stpnv0/TalkWave/internal/service/ports"
	"github.com/stpnv0/TalkWave/internal/suggest"
	"github.com/stpnv0/TalkWave/internal/view"
	"github.com/wb-go/wbf/logger"
)

// SyncService reconciles the materialized store and the announcement channel
// into one de-duplicated event list, applies the local overrides and payload
// extraction, and owns the command surface towards the store.
//
// Unlike the rest of the repo, no error crosses this boundary: reads come
// back empty and commands come back negative on any failure, with the cause
// logged. The UI only ever sees "nothing happened".
type SyncService struct {
	store         ports.TalkStore
	announcements ports.AnnouncementCache
	overrides     ports.OverrideStore
	generator     ports.TextGenerator
	notifier      ports.TalkNotifier
	logger        logger.Logger
}

func NewSyncService(
	store ports.TalkStore,
	announcements ports.AnnouncementCache,
	overrides ports.OverrideStore,
	generator ports.TextGenerator,
	notifier ports.TalkNotifier,
	logger logger.Logger,
) *SyncService {
	return &SyncService{
		store:         store,
		announcements: announcements,
		overrides:     overrides,
		generator:     generator,
		notifier:      notifier,
		logger:        logger,
	}
}

// FetchEvents returns the merged, override-filtered, normalized event list.
func (s *SyncService) FetchEvents(ctx context.Context) []*domain.Event {
	materialized, err := s.store.GetEvents(ctx)
	if err != nil {
		s.logger.Error("fetch materialized events failed",
			logger.String("error", err.Error()),
		)
	}

	announced, err := s.announcements.All(ctx)
	if err != nil {
		s.logger.Error("read announcement cache failed",
			logger.String("error", err.Error()),
		)
	}

	events := dropHidden(
		mergeAnnounced(materialized, announced),
		s.overrides.HiddenEventIDs(ctx),
	)

	identity := s.store.Identity()
	for _, e := range events {
		s.normalize(e, identity)
	}

	return events
}

// FetchEventByID returns one normalized event, or nil when it does not exist
// or the store read failed.
func (s *SyncService) FetchEventByID(ctx context.Context, id string) *domain.Event {
	event, err := s.store.GetEventByID(ctx, id)
	if err != nil {
		s.logger.Error("fetch event failed",
			logger.String("event_id", id),
			logger.String("error", err.Error()),
		)
		return nil
	}
	if event == nil {
		return nil
	}

	s.normalize(event, s.store.Identity())
	return event
}

// normalize runs the payload extractors and per-viewer derivation over a raw
// store record. Announced records already carry flat metadata and skip the
// envelope parse.
func (s *SyncService) normalize(e *domain.Event, identity string) {
	if !e.Announced {
		env := payload.ParseEventDescription(e.Description)
		e.Description = env.Description
		if env.EventDate != "" {
			e.EventDate = env.EventDate
		}
		if env.Location != "" {
			e.Location = env.Location
		}
		if env.Website != "" {
			e.Website = env.Website
		}
		if env.Contact != "" {
			e.Contact = env.Contact
		}
		if env.BannerImage != "" {
			e.BannerImage = env.BannerImage
		}
	}

	for _, t := range e.Talks {
		if t.Payload != "" {
			data := payload.ExtractTalkData(t.Payload)
			t.Title = data.Title
			t.Description = data.Description
			t.Speaker = data.Speaker
			t.Bio = data.Bio
		}
		t.HasVoted = view.HasVoted(t, identity)
		t.IsMine = view.IsMyTalk(t, identity)
	}
}

// CreateEvent publishes a new event. The extended metadata travels inside the
// description envelope; the store itself only knows a flat title/description
// pair. Returns the new event id, empty on failure.
func (s *SyncService) CreateEvent(ctx context.Context, input domain.CreateEventInput) string {
	description := payload.EncodeEventDescription(payload.EventEnvelope{
		Description: input.Description,
		EventDate:   input.EventDate,
		Location:    input.Location,
		Website:     input.Website,
		Contact:     input.Contact,
		BannerImage: input.BannerImage,
	})

	id, err := s.store.PublishEvent(ctx, input.Title, description, input.UseExternalWallet)
	if err != nil {
		s.logger.Error("publish event failed",
			logger.String("title", input.Title),
			logger.String("error", err.Error()),
		)
		return ""
	}

	s.logger.Info("event published",
		logger.String("event_id", id),
		logger.String("title", input.Title),
	)

	if input.Announce {
		if err := s.store.AnnounceEvent(ctx, domain.Announcement{
			ID:          id,
			Title:       input.Title,
			Description: input.Description,
			EventDate:   input.EventDate,
			Location:    input.Location,
			Website:     input.Website,
			Contact:     input.Contact,
			BannerImage: input.BannerImage,
			Timestamp:   time.Now().UTC(),
		}); err != nil {
			// the event itself is out, a failed announcement is not fatal
			s.logger.Error("announce event failed",
				logger.String("event_id", id),
				logger.String("error", err.Error()),
			)
		}
	}

	return id
}

// CreateTalk submits a talk. Submissions against a closed event are rejected
// here without reaching the store. Returns the new talk id, empty on failure.
func (s *SyncService) CreateTalk(ctx context.Context, input domain.CreateTalkInput) string {
	event, err := s.store.GetEventByID(ctx, input.EventID)
	if err != nil || event == nil {
		s.logger.Error("submit talk: event lookup failed",
			logger.String("event_id", input.EventID),
		)
		return ""
	}
	if !event.Enabled {
		s.logger.Warn("submit talk rejected",
			logger.String("event_id", input.EventID),
			logger.String("reason", domain.ErrEventClosed.Error()),
		)
		return ""
	}

	data := payload.TalkData{
		Title:       input.Title,
		Description: input.Description,
		Speaker:     input.Speaker,
		Bio:         input.Bio,
	}
	if data.Speaker == "" || data.Bio == "" {
		s.fillSpeakerDefaults(ctx, &data)
	}

	id, err := s.store.SubmitTalk(ctx, input.EventID, payload.EncodeTalkData(data), input.UseExternalWallet)
	if err != nil {
		s.logger.Error("submit talk failed",
			logger.String("event_id", input.EventID),
			logger.String("error", err.Error()),
		)
		return ""
	}

	s.logger.Info("talk submitted",
		logger.String("event_id", input.EventID),
		logger.String("talk_id", id),
	)

	go s.notifier.NotifyTalkSubmitted(context.WithoutCancel(ctx), event,
		&domain.Talk{ID: id, Title: data.Title, Speaker: data.Speaker})

	return id
}

// fillSpeakerDefaults falls back to the externally-verified wallet name and
// then the locally cached profile.
func (s *SyncService) fillSpeakerDefaults(ctx context.Context, data *payload.TalkData) {
	profile := s.overrides.UserProfile(ctx)
	if data.Speaker == "" {
		if name, err := s.store.ResolveName(ctx, s.store.Identity()); err == nil && name != "" {
			data.Speaker = name
		} else {
			data.Speaker = profile.Name
		}
	}
	if data.Bio == "" {
		data.Bio = profile.Bio
	}
}

// UpvoteTalk votes for a talk. Votes against a closed event or an already
// accepted (terminal) talk are rejected here without reaching the store.
func (s *SyncService) UpvoteTalk(ctx context.Context, eventID, talkID string) bool {
	event, err := s.store.GetEventByID(ctx, eventID)
	if err != nil || event == nil {
		s.logger.Error("vote: event lookup failed",
			logger.String("event_id", eventID),
		)
		return false
	}
	if !event.Enabled {
		s.logger.Warn("vote rejected",
			logger.String("event_id", eventID),
			logger.String("reason", domain.ErrEventClosed.Error()),
		)
		return false
	}
	if talk := findTalk(event, talkID); talk.Accepted() {
		s.logger.Warn("vote rejected",
			logger.String("talk_id", talkID),
			logger.String("reason", domain.ErrTalkAccepted.Error()),
		)
		return false
	}

	if err := s.store.VoteTalk(ctx, eventID, talkID); err != nil {
		s.logger.Error("vote failed",
			logger.String("event_id", eventID),
			logger.String("talk_id", talkID),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}

// CloseEvent marks the event closed for submissions and votes.
func (s *SyncService) CloseEvent(ctx context.Context, eventID string) bool {
	if err := s.store.CloseEvent(ctx, eventID); err != nil {
		s.logger.Error("close event failed",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return false
	}

	s.logger.Info("event closed", logger.String("event_id", eventID))
	return true
}

// AcceptTalk marks a talk accepted with optional feedback, making it
// terminal.
func (s *SyncService) AcceptTalk(ctx context.Context, eventID, talkID, feedback string) bool {
	if err := s.store.AcceptTalk(ctx, eventID, talkID, feedback); err != nil {
		s.logger.Error("accept talk failed",
			logger.String("event_id", eventID),
			logger.String("talk_id", talkID),
			logger.String("error", err.Error()),
		)
		return false
	}

	s.logger.Info("talk accepted",
		logger.String("event_id", eventID),
		logger.String("talk_id", talkID),
	)

	if event := s.FetchEventByID(ctx, eventID); event != nil {
		if talk := findTalk(event, talkID); talk != nil {
			go s.notifier.NotifyTalkAccepted(context.WithoutCancel(ctx), event, talk)
		}
	}

	return true
}

// AnnounceEvent re-broadcasts an existing event on the announcement channel.
func (s *SyncService) AnnounceEvent(ctx context.Context, eventID string) bool {
	event := s.FetchEventByID(ctx, eventID)
	if event == nil {
		return false
	}

	if err := s.store.AnnounceEvent(ctx, domain.Announcement{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		EventDate:   event.EventDate,
		Location:    event.Location,
		Website:     event.Website,
		Contact:     event.Contact,
		BannerImage: event.BannerImage,
		Timestamp:   time.Now().UTC(),
	}); err != nil {
		s.logger.Error("announce event failed",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}

// GenerateSuggestion asks the text-generation collaborator for a talk
// proposal and parses the completion. Returns nil on any failure.
func (s *SyncService) GenerateSuggestion(ctx context.Context, talks []*domain.Talk, eventDetails string, profile *domain.UserProfile) *domain.Suggestion {
	prompt := suggest.BuildPrompt(talks, eventDetails, profile)

	text, err := s.generator.Complete(ctx, prompt, s.overrides.APIKey(ctx))
	if err != nil {
		s.logger.Error("suggestion completion failed",
			logger.String("error", err.Error()),
		)
		return nil
	}

	suggestion := suggest.Parse(text)
	return &suggestion
}

func findTalk(event *domain.Event, talkID string) *domain.Talk {
	for _, t := range event.Talks {
		if t.ID == talkID {
			return t
		}
	}
	return nil
}
