package domain

import "time"

type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	OwnerAddress string    `json:"owner_address"`
	IsCreator    bool      `json:"is_creator"`
	EventDate    string    `json:"event_date,omitempty"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location,omitempty"`
	Website      string    `json:"website,omitempty"`
	Contact      string    `json:"contact,omitempty"`
	BannerImage  string    `json:"banner_image,omitempty"`
	Enabled      bool      `json:"enabled"`
	Announced    bool      `json:"announced"`
	Talks        []*Talk   `json:"talks"`
}

type CreateEventInput struct {
	Title             string
	Description       string
	EventDate         string
	Location          string
	Website           string
	Contact           string
	BannerImage       string
	Announce          bool
	UseExternalWallet bool
}

// Announcement is the lightweight broadcast form of an event, published on
// the global announcement channel before (or instead of) full materialization.
type Announcement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   string    `json:"eventDate,omitempty"`
	Location    string    `json:"location,omitempty"`
	Website     string    `json:"website,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	BannerImage string    `json:"bannerImage,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event converts the announcement into a display-ready event record. The
// caller is responsible for setting the Announced flag during merge.
func (a Announcement) Event() *Event {
	return &Event{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		EventDate:   a.EventDate,
		Date:        a.Timestamp,
		Location:    a.Location,
		Website:     a.Website,
		Contact:     a.Contact,
		BannerImage: a.BannerImage,
		Enabled:     true,
	}
}
