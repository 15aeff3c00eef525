// Package view holds the pure per-viewer derivation and list ordering logic
// applied on top of the synchronized event model.
package view

import (
	"strings"

	"github.com/stpnv0/TalkWave/internal/domain"
)

// HasVoted reports whether the given identity already voted for the talk.
// The store-supplied UpvotedByMe flag and the local voter-list comparison are
// combined with OR: the flag may be authoritative while the voter list is not
// fully materialized yet, and vice versa.
func HasVoted(talk *domain.Talk, identity string) bool {
	if talk == nil {
		return false
	}
	if talk.UpvotedByMe {
		return true
	}
	if identity == "" {
		return false
	}
	for _, addr := range talk.VoterAddresses {
		if strings.EqualFold(addr, identity) {
			return true
		}
	}
	return false
}

// IsMyTalk reports whether the talk belongs to the given identity, combining
// the store-supplied IsAuthor flag with address comparison.
func IsMyTalk(talk *domain.Talk, identity string) bool {
	if talk == nil {
		return false
	}
	if talk.IsAuthor {
		return true
	}
	return identity != "" && strings.EqualFold(talk.WalletAddress, identity)
}
