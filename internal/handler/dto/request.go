package dto

type CreateEventRequest struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description" binding:"required"`
	EventDate         string `json:"event_date"`
	Location          string `json:"location"`
	Website           string `json:"website"`
	Contact           string `json:"contact"`
	BannerImage       string `json:"banner_image"`
	Announce          *bool  `json:"announce"`
	UseExternalWallet bool   `json:"use_external_wallet"`
}

type CreateTalkRequest struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description" binding:"required"`
	Speaker           string `json:"speaker"`
	Bio               string `json:"bio"`
	UseExternalWallet bool   `json:"use_external_wallet"`
}

type AcceptTalkRequest struct {
	Feedback string `json:"feedback"`
}

type SuggestionRequest struct {
	EventID string `json:"event_id" binding:"required"`
}

type SaveProfileRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type SaveAPIKeyRequest struct {
	Key string `json:"key" binding:"required"`
}
