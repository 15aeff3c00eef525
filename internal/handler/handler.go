package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/stpnv0/TalkWave/internal/export"
	"github.com/stpnv0/TalkWave/internal/handler/dto"
	"github.com/stpnv0/TalkWave/internal/view"
	"github.com/wb-go/wbf/ginext"
)

type SyncSvc interface {
	FetchEvents(ctx context.Context) []*domain.Event
	FetchEventByID(ctx context.Context, id string) *domain.Event
	CreateEvent(ctx context.Context, input domain.CreateEventInput) string
	CreateTalk(ctx context.Context, input domain.CreateTalkInput) string
	UpvoteTalk(ctx context.Context, eventID, talkID string) bool
	CloseEvent(ctx context.Context, eventID string) bool
	AcceptTalk(ctx context.Context, eventID, talkID, feedback string) bool
	AnnounceEvent(ctx context.Context, eventID string) bool
	GenerateSuggestion(ctx context.Context, talks []*domain.Talk, eventDetails string, profile *domain.UserProfile) *domain.Suggestion
}

type OverrideSvc interface {
	HideEvent(ctx context.Context, id string) error
	UnhideEvent(ctx context.Context, id string) error
	UserProfile(ctx context.Context) domain.UserProfile
	SaveUserProfile(ctx context.Context, profile domain.UserProfile) error
	SaveAPIKey(ctx context.Context, key string) error
	HasAPIKey(ctx context.Context) bool
}

type Handler struct {
	syncService     SyncSvc
	overrideService OverrideSvc
}

func NewHandler(syncService SyncSvc, overrideService OverrideSvc) *Handler {
	return &Handler{
		syncService:     syncService,
		overrideService: overrideService,
	}
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events := h.syncService.FetchEvents(c.Request.Context())
	events = view.FilterEvents(events, view.EventFilter(c.DefaultQuery("filter", "all")), time.Now())

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	event := h.syncService.FetchEventByID(c.Request.Context(), c.Param("id"))
	if event == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "event not found"})
		return
	}

	event.Talks = view.SortTalks(event.Talks, view.SortOrder(c.DefaultQuery("sort", "votes")), nil)

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// announce by default, opt out explicitly
	announce := true
	if req.Announce != nil {
		announce = *req.Announce
	}

	id := h.syncService.CreateEvent(c.Request.Context(), domain.CreateEventInput{
		Title:             req.Title,
		Description:       req.Description,
		EventDate:         req.EventDate,
		Location:          req.Location,
		Website:           req.Website,
		Contact:           req.Contact,
		BannerImage:       req.BannerImage,
		Announce:          announce,
		UseExternalWallet: req.UseExternalWallet,
	})
	if id == "" {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "event could not be published"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

func (h *Handler) CloseEvent(c *ginext.Context) {
	if !h.syncService.CloseEvent(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "event could not be closed"})
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "closed"})
}

func (h *Handler) AnnounceEvent(c *ginext.Context) {
	if !h.syncService.AnnounceEvent(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "event could not be announced"})
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "announced"})
}

func (h *Handler) ExportEventICS(c *ginext.Context) {
	event := h.syncService.FetchEventByID(c.Request.Context(), c.Param("id"))
	if event == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "event not found"})
		return
	}

	data, err := export.EventICS(event)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="event.ics"`)
	c.Data(http.StatusOK, "text/calendar", data)
}

// Talks

func (h *Handler) CreateTalk(c *ginext.Context) {
	var req dto.CreateTalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	id := h.syncService.CreateTalk(c.Request.Context(), domain.CreateTalkInput{
		EventID:           c.Param("id"),
		Title:             req.Title,
		Description:       req.Description,
		Speaker:           req.Speaker,
		Bio:               req.Bio,
		UseExternalWallet: req.UseExternalWallet,
	})
	if id == "" {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "talk could not be submitted"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

func (h *Handler) UpvoteTalk(c *ginext.Context) {
	if !h.syncService.UpvoteTalk(c.Request.Context(), c.Param("id"), c.Param("talkId")) {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "vote could not be published"})
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "voted"})
}

func (h *Handler) AcceptTalk(c *ginext.Context) {
	var req dto.AcceptTalkRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	if !h.syncService.AcceptTalk(c.Request.Context(), c.Param("id"), c.Param("talkId"), req.Feedback) {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "talk could not be accepted"})
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "accepted"})
}

// Suggestions

func (h *Handler) GenerateSuggestion(c *ginext.Context) {
	var req dto.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event := h.syncService.FetchEventByID(c.Request.Context(), req.EventID)
	if event == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "event not found"})
		return
	}

	profile := h.overrideService.UserProfile(c.Request.Context())
	suggestion := h.syncService.GenerateSuggestion(c.Request.Context(), event.Talks, event.Description, &profile)
	if suggestion == nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "suggestion could not be generated"})
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionResponse{
		Title:       suggestion.Title,
		Description: suggestion.Description,
	})
}

// Local overrides

func (h *Handler) HideEvent(c *ginext.Context) {
	if err := h.overrideService.HideEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "hidden"})
}

func (h *Handler) UnhideEvent(c *ginext.Context) {
	if err := h.overrideService.UnhideEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "visible"})
}

func (h *Handler) GetProfile(c *ginext.Context) {
	profile := h.overrideService.UserProfile(c.Request.Context())
	c.JSON(http.StatusOK, dto.ProfileResponse{Name: profile.Name, Bio: profile.Bio})
}

func (h *Handler) SaveProfile(c *ginext.Context) {
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.overrideService.SaveUserProfile(c.Request.Context(), domain.UserProfile{
		Name: req.Name,
		Bio:  req.Bio,
	}); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{Name: req.Name, Bio: req.Bio})
}

func (h *Handler) GetAPIKeyStatus(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.APIKeyResponse{Set: h.overrideService.HasAPIKey(c.Request.Context())})
}

func (h *Handler) SaveAPIKey(c *ginext.Context) {
	var req dto.SaveAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.overrideService.SaveAPIKey(c.Request.Context(), req.Key); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIKeyResponse{Set: true})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
}
