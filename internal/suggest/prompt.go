package suggest

import (
	"fmt"
	"strings"

	"github.com/stpnv0/TalkWave/internal/domain"
)

// BuildPrompt assembles the completion prompt for a talk suggestion, priming
// the model for the Title:/Description: format Parse expects.
func BuildPrompt(talks []*domain.Talk, eventDetails string, profile *domain.UserProfile) string {
	var b strings.Builder

	b.WriteString("Suggest a new lightning talk for a community event.\n")
	if eventDetails != "" {
		fmt.Fprintf(&b, "The event: %s\n", eventDetails)
	}
	if profile != nil && profile.Name != "" {
		fmt.Fprintf(&b, "The speaker is %s.", profile.Name)
		if profile.Bio != "" {
			fmt.Fprintf(&b, " About the speaker: %s", profile.Bio)
		}
		b.WriteString("\n")
	}

	if len(talks) > 0 {
		b.WriteString("Talks already submitted (do not repeat these topics):\n")
		for _, t := range talks {
			fmt.Fprintf(&b, "- %s\n", t.Title)
		}
	}

	b.WriteString("\nAnswer in exactly this format:\nTitle: <talk title>\nDescription: <one or two sentences>\n")

	return b.String()
}
