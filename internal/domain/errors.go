package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
)

var (
	ErrEventClosed  = errors.New("event is closed for submissions and votes")
	ErrTalkAccepted = errors.New("talk has already been accepted")
)

var (
	ErrNoRelays = errors.New("no relay accepted the message")
)
