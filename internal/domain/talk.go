package domain

import "time"

type Talk struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Speaker     string `json:"speaker"`
	Bio         string `json:"bio,omitempty"`

	// Payload carries the raw store content the display fields above are
	// extracted from. Not part of the API model.
	Payload string `json:"-"`

	Votes          int      `json:"votes"`
	VoterAddresses []string `json:"voter_addresses"`
	WalletAddress  string   `json:"wallet_address"`

	// IsAuthor and UpvotedByMe are supplied by the store for the querying
	// identity. HasVoted and IsMine are derived locally and combine them
	// with address comparison.
	IsAuthor    bool `json:"is_author"`
	UpvotedByMe bool `json:"upvoted_by_me"`
	HasVoted    bool `json:"has_voted"`
	IsMine      bool `json:"is_mine"`

	CreatedAt time.Time `json:"created_at"`
	Answer    string    `json:"answer,omitempty"`
}

// Accepted reports whether the talk is terminal: a talk with a non-empty
// answer cannot be voted on again.
func (t *Talk) Accepted() bool {
	return t != nil && t.Answer != ""
}

type CreateTalkInput struct {
	EventID           string
	Title             string
	Description       string
	Speaker           string
	Bio               string
	UseExternalWallet bool
}

type UserProfile struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// Suggestion is a talk proposal extracted from an AI completion.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
