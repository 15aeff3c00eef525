package dto

import (
	"time"

	"github.com/stpnv0/TalkWave/internal/domain"
)

type EventResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	OwnerAddress string         `json:"owner_address"`
	IsCreator    bool           `json:"is_creator"`
	EventDate    string         `json:"event_date,omitempty"`
	Date         string         `json:"date"`
	Location     string         `json:"location,omitempty"`
	Website      string         `json:"website,omitempty"`
	Contact      string         `json:"contact,omitempty"`
	BannerImage  string         `json:"banner_image,omitempty"`
	Enabled      bool           `json:"enabled"`
	Announced    bool           `json:"announced"`
	Talks        []TalkResponse `json:"talks"`
}

type TalkResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Speaker        string   `json:"speaker"`
	Bio            string   `json:"bio,omitempty"`
	Votes          int      `json:"votes"`
	VoterAddresses []string `json:"voter_addresses"`
	WalletAddress  string   `json:"wallet_address"`
	HasVoted       bool     `json:"has_voted"`
	IsMine         bool     `json:"is_mine"`
	CreatedAt      string   `json:"created_at"`
	Answer         string   `json:"answer,omitempty"`
	Accepted       bool     `json:"accepted"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type ProfileResponse struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type APIKeyResponse struct {
	Set bool `json:"set"`
}

type SuggestionResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	talks := make([]TalkResponse, 0, len(e.Talks))
	for _, t := range e.Talks {
		talks = append(talks, ToTalkResponse(t))
	}

	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		OwnerAddress: e.OwnerAddress,
		IsCreator:    e.IsCreator,
		EventDate:    e.EventDate,
		Date:         e.Date.Format(time.RFC3339),
		Location:     e.Location,
		Website:      e.Website,
		Contact:      e.Contact,
		BannerImage:  e.BannerImage,
		Enabled:      e.Enabled,
		Announced:    e.Announced,
		Talks:        talks,
	}
}

func ToTalkResponse(t *domain.Talk) TalkResponse {
	return TalkResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Speaker:        t.Speaker,
		Bio:            t.Bio,
		Votes:          t.Votes,
		VoterAddresses: t.VoterAddresses,
		WalletAddress:  t.WalletAddress,
		HasVoted:       t.HasVoted,
		IsMine:         t.IsMine,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
		Answer:         t.Answer,
		Accepted:       t.Accepted(),
	}
}
