package tools

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pixabaymcp/internal/pixabay"
)

type stubSearchClient struct {
	mu sync.Mutex

	images    *pixabay.ImageSearchResult
	imagesErr error
	videos    *pixabay.VideoSearchResult
	videosErr error

	imageCalls  int
	videoCalls  int
	imageParams pixabay.SearchParams
	videoParams pixabay.SearchParams
}

func (s *stubSearchClient) SearchImages(ctx context.Context, params pixabay.SearchParams) (*pixabay.ImageSearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageCalls++
	s.imageParams = params
	return s.images, s.imagesErr
}

func (s *stubSearchClient) SearchVideos(ctx context.Context, params pixabay.SearchParams) (*pixabay.VideoSearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videoCalls++
	s.videoParams = params
	return s.videos, s.videosErr
}

func newTestToolset(client SearchClient) *Toolset {
	return NewToolset(ToolsetConfig{
		Client:    client,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		WidgetURI: "ui://widget/pixabay-search.html",
	})
}

func imageFixture(n, total int) *pixabay.ImageSearchResult {
	images := make([]pixabay.ImageResult, 0, n)
	for i := 0; i < n; i++ {
		images = append(images, pixabay.ImageResult{
			ID:         i + 1,
			PreviewURL: "https://cdn.pixabay.com/preview.jpg",
			PageURL:    "https://pixabay.com/photos/x-1/",
			ImageURL:   "https://pixabay.com/get/full.jpg",
			Tags:       []string{"nature"},
		})
	}
	return &pixabay.ImageSearchResult{Images: images, TotalHits: total, Locale: "en"}
}

func videoFixture(n, total int) *pixabay.VideoSearchResult {
	videos := make([]pixabay.VideoResult, 0, n)
	for i := 0; i < n; i++ {
		videos = append(videos, pixabay.VideoResult{
			ID:       i + 1,
			PageURL:  "https://pixabay.com/videos/x-1/",
			VideoURL: "https://cdn.pixabay.com/video.mp4",
			Tags:     []string{"nature"},
		})
	}
	return &pixabay.VideoSearchResult{Videos: videos, TotalHits: total, Locale: "en"}
}

func callRequest(meta mcp.Meta) *mcp.CallToolRequest {
	return &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Meta: meta}}
}

func TestHandleSearchImages(t *testing.T) {
	t.Run("returns payload summary and metadata", func(t *testing.T) {
		stub := &stubSearchClient{images: imageFixture(3, 120)}
		stub.images.RateLimit = &pixabay.RateLimit{Limit: 100, Remaining: 93, ResetSeconds: 45}
		ts := newTestToolset(stub)

		res, payload, err := ts.handleSearchImages(context.Background(), callRequest(nil), map[string]any{
			"query":    "sunset",
			"per_page": float64(5),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.ResultCount != 3 || payload.TotalHits != 120 {
			t.Errorf("payload counts = %d/%d, want 3/120", payload.ResultCount, payload.TotalHits)
		}
		if payload.Query != "sunset" {
			t.Errorf("payload.Query = %q", payload.Query)
		}
		if payload.Attribution != "Powered by Pixabay" {
			t.Errorf("payload.Attribution = %q", payload.Attribution)
		}

		text, ok := res.Content[0].(*mcp.TextContent)
		if !ok {
			t.Fatalf("content[0] is %T, want *mcp.TextContent", res.Content[0])
		}
		if want := `Found 3 Pixabay images for "sunset".`; text.Text != want {
			t.Errorf("summary = %q, want %q", text.Text, want)
		}

		if got := res.Meta["pixabay/locale"]; got != "en" {
			t.Errorf("locale meta = %v, want en", got)
		}
		rl, ok := res.Meta["pixabay/rateLimit"].(map[string]any)
		if !ok {
			t.Fatalf("rate limit meta missing: %v", res.Meta)
		}
		if rl["remaining"] != 93 {
			t.Errorf("remaining = %v, want 93", rl["remaining"])
		}
	})

	t.Run("no results summary", func(t *testing.T) {
		stub := &stubSearchClient{images: imageFixture(0, 0)}
		ts := newTestToolset(stub)

		res, payload, err := ts.handleSearchImages(context.Background(), callRequest(nil), map[string]any{"query": "zzzzz"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.ResultCount != 0 {
			t.Errorf("ResultCount = %d, want 0", payload.ResultCount)
		}
		text := res.Content[0].(*mcp.TextContent)
		if want := `No Pixabay images found for "zzzzz". Try a different description or add more detail.`; text.Text != want {
			t.Errorf("summary = %q, want %q", text.Text, want)
		}
	})

	t.Run("validation failure skips upstream", func(t *testing.T) {
		stub := &stubSearchClient{}
		ts := newTestToolset(stub)

		_, _, err := ts.handleSearchImages(context.Background(), callRequest(nil), map[string]any{})
		if err == nil {
			t.Fatal("expected error")
		}
		if stub.imageCalls != 0 {
			t.Errorf("upstream called %d times before validation passed", stub.imageCalls)
		}
	})

	t.Run("normalizes json-encoded query", func(t *testing.T) {
		stub := &stubSearchClient{images: imageFixture(1, 1)}
		ts := newTestToolset(stub)

		_, payload, err := ts.handleSearchImages(context.Background(), callRequest(nil), map[string]any{
			"query": `{"query":"cats"}`,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stub.imageParams.Query != "cats" {
			t.Errorf("upstream query = %q, want %q", stub.imageParams.Query, "cats")
		}
		if payload.Query != "cats" {
			t.Errorf("payload.Query = %q, want %q", payload.Query, "cats")
		}
	})

	t.Run("locale hint from call metadata", func(t *testing.T) {
		stub := &stubSearchClient{images: imageFixture(1, 1)}
		ts := newTestToolset(stub)

		req := callRequest(mcp.Meta{"openai/locale": "de-DE"})
		if _, _, err := ts.handleSearchImages(context.Background(), req, map[string]any{"query": "katze"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stub.imageParams.Locale != "de-DE" {
			t.Errorf("upstream locale = %q, want de-DE", stub.imageParams.Locale)
		}
	})

	t.Run("upstream error passes through", func(t *testing.T) {
		stubErr := &pixabay.APIError{Kind: pixabay.KindRateLimited, Status: 429, Message: "Pixabay rate limit exceeded. Please wait a moment before trying again."}
		stub := &stubSearchClient{imagesErr: stubErr}
		ts := newTestToolset(stub)

		_, _, err := ts.handleSearchImages(context.Background(), callRequest(nil), map[string]any{"query": "cats"})
		if !errors.Is(err, stubErr) {
			t.Fatalf("err = %v, want %v", err, stubErr)
		}
	})
}

func TestHandleSearchMedia(t *testing.T) {
	t.Run("combines both result sets", func(t *testing.T) {
		stub := &stubSearchClient{images: imageFixture(3, 50), videos: videoFixture(2, 7)}
		ts := newTestToolset(stub)

		res, payload, err := ts.handleSearchMedia(context.Background(), callRequest(nil), map[string]any{"query": "nature"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.ImageCount != 3 || payload.VideoCount != 2 {
			t.Errorf("counts = %d/%d, want 3/2", payload.ImageCount, payload.VideoCount)
		}
		if payload.TotalImageHits != 50 || payload.TotalVideoHits != 7 {
			t.Errorf("totals = %d/%d, want 50/7", payload.TotalImageHits, payload.TotalVideoHits)
		}
		text := res.Content[0].(*mcp.TextContent)
		if want := `Found 3 images and 2 videos on Pixabay for "nature".`; text.Text != want {
			t.Errorf("summary = %q, want %q", text.Text, want)
		}
		if stub.imageCalls != 1 || stub.videoCalls != 1 {
			t.Errorf("upstream calls = %d/%d, want 1/1", stub.imageCalls, stub.videoCalls)
		}
	})

	t.Run("passes identical params to both searches", func(t *testing.T) {
		stub := &stubSearchClient{images: imageFixture(1, 1), videos: videoFixture(1, 1)}
		ts := newTestToolset(stub)

		req := callRequest(mcp.Meta{"openai/userLocale": "fr"})
		_, _, err := ts.handleSearchMedia(context.Background(), req, map[string]any{
			"query":       "ocean",
			"orientation": "vertical",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stub.imageParams.Locale != "fr" || stub.videoParams.Locale != "fr" {
			t.Errorf("locales = %q/%q, want fr/fr", stub.imageParams.Locale, stub.videoParams.Locale)
		}
		if stub.imageParams.Orientation != "vertical" || stub.videoParams.Orientation != "vertical" {
			t.Errorf("orientations = %q/%q", stub.imageParams.Orientation, stub.videoParams.Orientation)
		}
	})

	t.Run("image error takes precedence", func(t *testing.T) {
		imgErr := &pixabay.APIError{Kind: pixabay.KindAuthenticationFailed, Status: 401, Message: "Pixabay authentication failed. Verify the API key."}
		vidErr := &pixabay.APIError{Kind: pixabay.KindUpstreamFailed, Status: 500, Message: "Pixabay request failed (status 500): Internal Server Error"}
		stub := &stubSearchClient{imagesErr: imgErr, videosErr: vidErr}
		ts := newTestToolset(stub)

		_, _, err := ts.handleSearchMedia(context.Background(), callRequest(nil), map[string]any{"query": "cats"})
		if !errors.Is(err, imgErr) {
			t.Fatalf("err = %v, want image error", err)
		}
	})

	t.Run("video error propagates when images succeed", func(t *testing.T) {
		vidErr := &pixabay.APIError{Kind: pixabay.KindRateLimited, Status: 429, Message: "Pixabay rate limit exceeded. Please wait a moment before trying again."}
		stub := &stubSearchClient{images: imageFixture(2, 2), videosErr: vidErr}
		ts := newTestToolset(stub)

		_, _, err := ts.handleSearchMedia(context.Background(), callRequest(nil), map[string]any{"query": "cats"})
		if !errors.Is(err, vidErr) {
			t.Fatalf("err = %v, want video error", err)
		}
	})

	t.Run("validation failure skips both upstreams", func(t *testing.T) {
		stub := &stubSearchClient{}
		ts := newTestToolset(stub)

		_, _, err := ts.handleSearchMedia(context.Background(), callRequest(nil), map[string]any{"query": "", "bogus": true})
		if err == nil {
			t.Fatal("expected error")
		}
		if stub.imageCalls != 0 || stub.videoCalls != 0 {
			t.Errorf("upstream calls = %d/%d, want 0/0", stub.imageCalls, stub.videoCalls)
		}
	})
}

func TestLocaleFromMeta(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]any
		want string
	}{
		{"nil meta", nil, "en"},
		{"locale key", map[string]any{"openai/locale": "pt-BR"}, "pt-BR"},
		{"user locale fallback", map[string]any{"openai/userLocale": "ja"}, "ja"},
		{"locale key wins", map[string]any{"openai/locale": "de", "openai/userLocale": "fr"}, "de"},
		{"blank hint ignored", map[string]any{"openai/locale": "  "}, "en"},
		{"non-string hint ignored", map[string]any{"openai/locale": 7}, "en"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LocaleFromMeta(tc.meta, "en"); got != tc.want {
				t.Errorf("LocaleFromMeta = %q, want %q", got, tc.want)
			}
		})
	}
}
