package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/stpnv0/TalkWave/internal/handler/dto"
	hmocks "github.com/stpnv0/TalkWave/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockSyncSvc, *hmocks.MockOverrideSvc, http.Handler) {
	t.Helper()
	syncSvc := hmocks.NewMockSyncSvc(t)
	overrideSvc := hmocks.NewMockOverrideSvc(t)

	h := NewHandler(syncSvc, overrideSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/close", h.CloseEvent)
		api.POST("/events/:id/announce", h.AnnounceEvent)
		api.GET("/events/:id/ics", h.ExportEventICS)
		api.POST("/events/:id/talks", h.CreateTalk)
		api.POST("/events/:id/talks/:talkId/vote", h.UpvoteTalk)
		api.POST("/events/:id/talks/:talkId/accept", h.AcceptTalk)
		api.POST("/suggestions", h.GenerateSuggestion)
		api.POST("/events/:id/hide", h.HideEvent)
		api.DELETE("/events/:id/hide", h.UnhideEvent)
		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.SaveProfile)
		api.GET("/apikey", h.GetAPIKeyStatus)
		api.PUT("/apikey", h.SaveAPIKey)
	}

	return syncSvc, overrideSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	return w
}

// --- Events ---

func TestHandler_ListEvents(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().FetchEvents(mock.Anything).Return([]*domain.Event{
		{ID: "ev1", Title: "GopherConf", Enabled: true},
		{ID: "ev2", Title: "Lightning Night", Enabled: false},
	})

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "GopherConf", resp[0].Title)
}

func TestHandler_ListEvents_Filtered(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().FetchEvents(mock.Anything).Return([]*domain.Event{
		{ID: "mine", Title: "Mine", IsCreator: true},
		{ID: "other", Title: "Other"},
	})

	w := doJSON(t, r, http.MethodGet, "/api/events?filter=created", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "mine", resp[0].ID)
}

func TestHandler_GetEvent_SortsTalks(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().FetchEventByID(mock.Anything, "ev1").Return(&domain.Event{
		ID:    "ev1",
		Title: "GopherConf",
		Talks: []*domain.Talk{
			{ID: "low", Votes: 1},
			{ID: "high", Votes: 7},
		},
	})

	w := doJSON(t, r, http.MethodGet, "/api/events/ev1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Talks, 2)
	assert.Equal(t, "high", resp.Talks[0].ID)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().FetchEventByID(mock.Anything, "nope").Return(nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().
		CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
			return in.Title == "GopherConf" && in.Announce
		})).
		Return("ev1")

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:       "GopherConf",
		Description: "Lightning talks",
		EventDate:   "2026-10-01T18:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ev1", resp.ID)
}

func TestHandler_CreateEvent_AnnounceOptOut(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	noAnnounce := false
	syncSvc.EXPECT().
		CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
			return !in.Announce
		})).
		Return("ev1")

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:       "GopherConf",
		Description: "Lightning talks",
		Announce:    &noAnnounce,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateEvent_InvalidBody(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]string{"title": "no description"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_PublishFailed(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return("")

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:       "GopherConf",
		Description: "Lightning talks",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_CloseEvent(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().CloseEvent(mock.Anything, "ev1").Return(true)

	w := doJSON(t, r, http.MethodPost, "/api/events/ev1/close", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AnnounceEvent_Failed(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().AnnounceEvent(mock.Anything, "ev1").Return(false)

	w := doJSON(t, r, http.MethodPost, "/api/events/ev1/announce", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_ExportEventICS(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().FetchEventByID(mock.Anything, "ev1").Return(&domain.Event{
		ID:        "ev1",
		Title:     "GopherConf",
		EventDate: "2026-10-01T18:00",
	})

	w := doJSON(t, r, http.MethodGet, "/api/events/ev1/ics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
	assert.Contains(t, w.Body.String(), "GopherConf")
}

func TestHandler_ExportEventICS_NoDate(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().FetchEventByID(mock.Anything, "ev1").Return(&domain.Event{
		ID:    "ev1",
		Title: "GopherConf",
	})

	w := doJSON(t, r, http.MethodGet, "/api/events/ev1/ics", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// --- Talks ---

func TestHandler_CreateTalk_Success(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().
		CreateTalk(mock.Anything, mock.MatchedBy(func(in domain.CreateTalkInput) bool {
			return in.EventID == "ev1" && in.Title == "Generics in Practice"
		})).
		Return("talk1")

	w := doJSON(t, r, http.MethodPost, "/api/events/ev1/talks", dto.CreateTalkRequest{
		Title:       "Generics in Practice",
		Description: "What we learned",
		Speaker:     "Alice",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "talk1", resp.ID)
}

func TestHandler_CreateTalk_Rejected(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().CreateTalk(mock.Anything, mock.Anything).Return("")

	w := doJSON(t, r, http.MethodPost, "/api/events/ev1/talks", dto.CreateTalkRequest{
		Title:       "Generics in Practice",
		Description: "What we learned",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_UpvoteTalk(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().UpvoteTalk(mock.Anything, "ev1", "talk1").Return(true)

	w := doJSON(t, r, http.MethodPost, "/api/events/ev1/talks/talk1/vote", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AcceptTalk_WithFeedback(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().AcceptTalk(mock.Anything, "ev1", "talk1", "See you on stage").Return(true)

	w := doJSON(t, r, http.MethodPost, "/api/events/ev1/talks/talk1/accept", dto.AcceptTalkRequest{
		Feedback: "See you on stage",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AcceptTalk_EmptyBody(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().AcceptTalk(mock.Anything, "ev1", "talk1", "").Return(true)

	w := doJSON(t, r, http.MethodPost, "/api/events/ev1/talks/talk1/accept", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Suggestions ---

func TestHandler_GenerateSuggestion_Success(t *testing.T) {
	syncSvc, overrideSvc, r := setupRouter(t)

	event := &domain.Event{
		ID:          "ev1",
		Description: "Cloud native meetup",
		Talks:       []*domain.Talk{{Title: "Existing talk"}},
	}

	syncSvc.EXPECT().FetchEventByID(mock.Anything, "ev1").Return(event)
	overrideSvc.EXPECT().UserProfile(mock.Anything).Return(domain.UserProfile{Name: "Alice"})
	syncSvc.EXPECT().
		GenerateSuggestion(mock.Anything, event.Talks, "Cloud native meetup", mock.Anything).
		Return(&domain.Suggestion{Title: "Observability on a Budget", Description: "Five minutes of tracing"})

	w := doJSON(t, r, http.MethodPost, "/api/suggestions", dto.SuggestionRequest{EventID: "ev1"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuggestionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Observability on a Budget", resp.Title)
}

func TestHandler_GenerateSuggestion_EventNotFound(t *testing.T) {
	syncSvc, _, r := setupRouter(t)

	syncSvc.EXPECT().FetchEventByID(mock.Anything, "nope").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/suggestions", dto.SuggestionRequest{EventID: "nope"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GenerateSuggestion_GeneratorFailed(t *testing.T) {
	syncSvc, overrideSvc, r := setupRouter(t)

	syncSvc.EXPECT().FetchEventByID(mock.Anything, "ev1").Return(&domain.Event{ID: "ev1"})
	overrideSvc.EXPECT().UserProfile(mock.Anything).Return(domain.UserProfile{})
	syncSvc.EXPECT().GenerateSuggestion(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/suggestions", dto.SuggestionRequest{EventID: "ev1"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// --- Local overrides ---

func TestHandler_HideAndUnhideEvent(t *testing.T) {
	_, overrideSvc, r := setupRouter(t)

	overrideSvc.EXPECT().HideEvent(mock.Anything, "ev1").Return(nil)
	overrideSvc.EXPECT().UnhideEvent(mock.Anything, "ev1").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/ev1/hide", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/events/ev1/hide", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SaveProfile(t *testing.T) {
	_, overrideSvc, r := setupRouter(t)

	overrideSvc.EXPECT().
		SaveUserProfile(mock.Anything, domain.UserProfile{Name: "Alice", Bio: "Go developer"}).
		Return(nil)

	w := doJSON(t, r, http.MethodPut, "/api/profile", dto.SaveProfileRequest{
		Name: "Alice",
		Bio:  "Go developer",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
}

func TestHandler_GetAPIKeyStatus(t *testing.T) {
	_, overrideSvc, r := setupRouter(t)

	overrideSvc.EXPECT().HasAPIKey(mock.Anything).Return(false)

	w := doJSON(t, r, http.MethodGet, "/api/apikey", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"set":false`))
}

func TestHandler_SaveAPIKey(t *testing.T) {
	_, overrideSvc, r := setupRouter(t)

	overrideSvc.EXPECT().SaveAPIKey(mock.Anything, "sk-test").Return(nil)

	w := doJSON(t, r, http.MethodPut, "/api/apikey", dto.SaveAPIKeyRequest{Key: "sk-test"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Set)
}
