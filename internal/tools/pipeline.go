package tools

import (
	"context"

	"pixabaymcp/internal/pixabay"
)

// ImageSearchOutcome is everything a transport needs to render an
// image search response.
type ImageSearchOutcome struct {
	Payload   ImagesPayload
	Summary   string
	Locale    string
	RateLimit *pixabay.RateLimit
}

// MediaSearchOutcome is the combined image and video equivalent.
type MediaSearchOutcome struct {
	Payload   MediaPayload
	Summary   string
	Locale    string
	RateLimit *pixabay.RateLimit
}

// RunImageSearch executes the image pipeline: validate, normalize,
// search, assemble. Transports differ only in how they carry the
// outcome back to the caller.
func (ts *Toolset) RunImageSearch(ctx context.Context, args map[string]any, locale string) (*ImageSearchOutcome, error) {
	if locale == "" {
		locale = ts.defaultLocale
	}

	parsed, err := ParseSearchRequest(args)
	if err != nil {
		return nil, err
	}

	query := NormalizeQuery(parsed.Query)
	result, err := ts.client.SearchImages(ctx, pixabay.SearchParams{
		Query:       query,
		Orientation: parsed.Orientation,
		SafeSearch:  parsed.SafeSearch,
		PerPage:     parsed.PerPage,
		Locale:      locale,
	})
	if err != nil {
		return nil, err
	}

	return &ImageSearchOutcome{
		Payload: ImagesPayload{
			Query:       query,
			ResultCount: len(result.Images),
			TotalHits:   result.TotalHits,
			Images:      result.Images,
			Attribution: Attribution,
		},
		Summary:   imageSummary(len(result.Images), query),
		Locale:    result.Locale,
		RateLimit: result.RateLimit,
	}, nil
}

// RunMediaSearch issues the image and video searches as independent
// upstream calls and joins the results. When both fail, the image
// failure is the one reported.
func (ts *Toolset) RunMediaSearch(ctx context.Context, args map[string]any, locale string) (*MediaSearchOutcome, error) {
	if locale == "" {
		locale = ts.defaultLocale
	}

	parsed, err := ParseSearchRequest(args)
	if err != nil {
		return nil, err
	}

	query := NormalizeQuery(parsed.Query)
	params := pixabay.SearchParams{
		Query:       query,
		Orientation: parsed.Orientation,
		SafeSearch:  parsed.SafeSearch,
		PerPage:     parsed.PerPage,
		Locale:      locale,
	}

	type videoOutcome struct {
		result *pixabay.VideoSearchResult
		err    error
	}
	videoCh := make(chan videoOutcome, 1)
	go func() {
		result, err := ts.client.SearchVideos(ctx, params)
		videoCh <- videoOutcome{result, err}
	}()

	images, imagesErr := ts.client.SearchImages(ctx, params)
	videos := <-videoCh

	if imagesErr != nil {
		return nil, imagesErr
	}
	if videos.err != nil {
		return nil, videos.err
	}

	rl := images.RateLimit
	if rl == nil {
		rl = videos.result.RateLimit
	}

	return &MediaSearchOutcome{
		Payload: MediaPayload{
			Query:          query,
			ImageCount:     len(images.Images),
			VideoCount:     len(videos.result.Videos),
			TotalImageHits: images.TotalHits,
			TotalVideoHits: videos.result.TotalHits,
			Images:         images.Images,
			Videos:         videos.result.Videos,
			Attribution:    Attribution,
		},
		Summary:   mediaSummary(len(images.Images), len(videos.result.Videos), query),
		Locale:    images.Locale,
		RateLimit: rl,
	}, nil
}
