// Package payload extracts structured fields from the opaque string payloads
// the decentralized store carries: talk bodies and event descriptions both
// overload a single free-text field with an optional JSON envelope.
package payload

import "encoding/json"

const (
	DefaultTalkTitle   = "Unknown Talk"
	DefaultTalkSpeaker = "Anonymous"
)

// TalkData is the structured form of a talk payload.
type TalkData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Speaker     string `json:"speaker"`
	Bio         string `json:"bio,omitempty"`
}

// ExtractTalkData parses a talk payload. A JSON object yields its fields
// with defaults applied for the missing ones; anything else is treated as a
// plain-text title. Never fails.
func ExtractTalkData(raw string) TalkData {
	var data TalkData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return TalkData{Title: raw, Speaker: DefaultTalkSpeaker}
	}
	if data.Title == "" {
		data.Title = DefaultTalkTitle
	}
	if data.Speaker == "" {
		data.Speaker = DefaultTalkSpeaker
	}
	return data
}

// EncodeTalkData serializes talk fields into the wire payload.
func EncodeTalkData(data TalkData) string {
	b, err := json.Marshal(data)
	if err != nil {
		return data.Title
	}
	return string(b)
}

// EventEnvelope is the metadata smuggled inside an event's description field.
// The store itself only knows a flat title/description pair.
type EventEnvelope struct {
	Description string `json:"description"`
	EventDate   string `json:"eventDate,omitempty"`
	Location    string `json:"location,omitempty"`
	Website     string `json:"website,omitempty"`
	Contact     string `json:"contact,omitempty"`
	BannerImage string `json:"bannerImage,omitempty"`
}

// ParseEventDescription decodes the envelope out of a raw description. If the
// input is not a JSON object carrying a description string, the raw input is
// returned unchanged as the display description and the metadata stays empty.
// Empty input yields a zero envelope. Never fails.
func ParseEventDescription(raw string) EventEnvelope {
	if raw == "" {
		return EventEnvelope{}
	}

	var env EventEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil || env.Description == "" {
		return EventEnvelope{Description: raw}
	}
	return env
}

// EncodeEventDescription serializes the envelope for publishing. The inverse
// of ParseEventDescription for well-formed envelopes.
func EncodeEventDescription(env EventEnvelope) string {
	b, err := json.Marshal(env)
	if err != nil {
		return env.Description
	}
	return string(b)
}
