package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TitleAndDescriptionMarkers(t *testing.T) {
	s := Parse("Title: My Talk\nDescription: A short talk about X")

	assert.Equal(t, "My Talk", s.Title)
	assert.Equal(t, "A short talk about X", s.Description)
}

func TestParse_MarkdownHeading(t *testing.T) {
	s := Parse("# Concurrency Patterns\nChannels, contexts and cancellation.")

	assert.Equal(t, "Concurrency Patterns", s.Title)
	assert.Equal(t, "Channels, contexts and cancellation.", s.Description)
}

func TestParse_DescriptionFromFollowingLines(t *testing.T) {
	s := Parse("Title: Testing in Anger\nFirst part.\n\nSecond part.")

	assert.Equal(t, "Testing in Anger", s.Title)
	assert.Equal(t, "First part. Second part.", s.Description)
}

func TestParse_NoMarkersAtAll(t *testing.T) {
	s := Parse("Why monoliths deserve love\nA contrarian take on microservices.")

	assert.Equal(t, "Why monoliths deserve love", s.Title)
	assert.Equal(t, "A contrarian take on microservices.", s.Description)
}

func TestParse_WhitespaceOnlyInput(t *testing.T) {
	s := Parse("   \n  \n")

	assert.Equal(t, "AI Generated Talk", s.Title)
}

func TestParse_LongDescriptionTruncated(t *testing.T) {
	s := Parse("Title: T\nDescription: " + strings.Repeat("x", 250))

	assert.LessOrEqual(t, len(s.Description), 200)
	assert.True(t, strings.HasSuffix(s.Description, "..."))
}

func TestParse_AlwaysNonEmptyTitle(t *testing.T) {
	for _, input := range []string{
		"Title: X",
		"just one line",
		"# heading only",
		"Description: but no title",
	} {
		s := Parse(input)
		assert.NotEmpty(t, s.Title, "input %q", input)
	}
}

func TestClient_Complete_TextShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-local", r.Header.Get("Authorization"))
		w.Write([]byte(`{"text":"Title: T\nDescription: D"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "sk-config", 5*time.Second)

	// locally stored key wins over the configured one
	text, err := c.Complete(context.Background(), "prompt", "sk-local")

	require.NoError(t, err)
	assert.Equal(t, "Title: T\nDescription: D", text)
}

func TestClient_Complete_ChoicesShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"text":"completion"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "", 5*time.Second)

	text, err := c.Complete(context.Background(), "prompt", "")

	require.NoError(t, err)
	assert.Equal(t, "completion", text)
}

func TestClient_Complete_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "", 5*time.Second)

	_, err := c.Complete(context.Background(), "prompt", "")

	require.Error(t, err)
}

func TestBuildPrompt_PrimesFormat(t *testing.T) {
	talks := []*domain.Talk{{Title: "Existing talk"}}
	profile := &domain.UserProfile{Name: "Sam", Bio: "backend dev"}

	prompt := BuildPrompt(talks, "GopherCon lightning round", profile)

	assert.Contains(t, prompt, "Title:")
	assert.Contains(t, prompt, "Description:")
	assert.Contains(t, prompt, "Existing talk")
	assert.Contains(t, prompt, "Sam")
	assert.Contains(t, prompt, "GopherCon lightning round")
}
