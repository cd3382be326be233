package pixabay

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// searchEnvelope is the loosely-typed upstream response. Hits are kept
// as raw maps so a single malformed record can be dropped without
// failing the whole response.
type searchEnvelope struct {
	TotalHits *float64         `json:"totalHits"`
	Hits      []map[string]any `json:"hits"`
}

// renditionPriority is the order video renditions are tried for the
// playable URL.
var renditionPriority = []string{"medium", "large", "small", "tiny"}

// thumbnailPriority is the fallback order when the chosen rendition has
// no thumbnail of its own.
var thumbnailPriority = []string{"medium", "small", "large", "tiny"}

// mapImageResponse decodes an image search body into validated results
// plus the total-hit count. Invalid hits are dropped, never escalated.
func mapImageResponse(body []byte, logger *slog.Logger) ([]ImageResult, int, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, 0, err
	}

	images := make([]ImageResult, 0, len(env.Hits))
	for i, hit := range env.Hits {
		img, err := mapImageHit(hit)
		if err != nil {
			logger.Debug("dropping invalid image hit", "index", i, "reason", err.Error())
			continue
		}
		images = append(images, img)
	}

	return images, totalHits(env, len(images)), nil
}

// mapVideoResponse decodes a video search body into validated results
// plus the total-hit count.
func mapVideoResponse(body []byte, logger *slog.Logger) ([]VideoResult, int, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, 0, err
	}

	videos := make([]VideoResult, 0, len(env.Hits))
	for i, hit := range env.Hits {
		vid, err := mapVideoHit(hit)
		if err != nil {
			logger.Debug("dropping invalid video hit", "index", i, "reason", err.Error())
			continue
		}
		videos = append(videos, vid)
	}

	return videos, totalHits(env, len(videos)), nil
}

func decodeEnvelope(body []byte) (searchEnvelope, error) {
	var env searchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return searchEnvelope{}, &APIError{
			Kind:    KindUpstreamFailed,
			Message: fmt.Sprintf("Pixabay returned an unreadable response: %v", err),
		}
	}
	return env, nil
}

// totalHits prefers the upstream-reported total and falls back to the
// surviving-result count.
func totalHits(env searchEnvelope, surviving int) int {
	if env.TotalHits != nil {
		return int(*env.TotalHits)
	}
	return surviving
}

// mapImageHit validates one raw image record. Any missing or mistyped
// required field rejects the whole hit.
func mapImageHit(hit map[string]any) (ImageResult, error) {
	id, err := intField(hit, "id")
	if err != nil {
		return ImageResult{}, err
	}
	previewURL, err := urlField(hit, "previewURL")
	if err != nil {
		return ImageResult{}, err
	}
	pageURL, err := urlField(hit, "pageURL")
	if err != nil {
		return ImageResult{}, err
	}
	imageURL, err := urlField(hit, "webformatURL")
	if err != nil {
		return ImageResult{}, err
	}
	width, err := intField(hit, "imageWidth")
	if err != nil {
		return ImageResult{}, err
	}
	height, err := intField(hit, "imageHeight")
	if err != nil {
		return ImageResult{}, err
	}
	rawTags, err := stringField(hit, "tags")
	if err != nil {
		return ImageResult{}, err
	}
	creator, err := contributorFields(hit)
	if err != nil {
		return ImageResult{}, err
	}
	likes, err := intField(hit, "likes")
	if err != nil {
		return ImageResult{}, err
	}
	downloads, err := intField(hit, "downloads")
	if err != nil {
		return ImageResult{}, err
	}

	return ImageResult{
		ID:           id,
		PreviewURL:   previewURL,
		PageURL:      pageURL,
		ImageURL:     imageURL,
		ImageWidth:   width,
		ImageHeight:  height,
		Tags:         splitTags(rawTags),
		Photographer: creator,
		Likes:        likes,
		Downloads:    downloads,
	}, nil
}

// mapVideoHit validates one raw video record and selects the best
// rendition and thumbnail.
func mapVideoHit(hit map[string]any) (VideoResult, error) {
	id, err := intField(hit, "id")
	if err != nil {
		return VideoResult{}, err
	}
	pageURL, err := urlField(hit, "pageURL")
	if err != nil {
		return VideoResult{}, err
	}
	duration, err := intField(hit, "duration")
	if err != nil {
		return VideoResult{}, err
	}
	rawTags, err := stringField(hit, "tags")
	if err != nil {
		return VideoResult{}, err
	}
	creator, err := contributorFields(hit)
	if err != nil {
		return VideoResult{}, err
	}

	renditions, ok := hit["videos"].(map[string]any)
	if !ok {
		return VideoResult{}, fmt.Errorf("videos renditions missing")
	}

	chosen := pickRendition(renditions)
	if chosen == nil {
		return VideoResult{}, fmt.Errorf("no playable rendition")
	}
	videoURL, _ := chosen["url"].(string)

	return VideoResult{
		ID:              id,
		PageURL:         pageURL,
		VideoURL:        videoURL,
		PreviewImageURL: pickThumbnail(chosen, renditions),
		Width:           optionalInt(chosen, "width"),
		Height:          optionalInt(chosen, "height"),
		DurationSeconds: duration,
		Tags:            splitTags(rawTags),
		Creator:         creator,
		Likes:           optionalInt(hit, "likes"),
		Downloads:       optionalInt(hit, "downloads"),
	}, nil
}

// pickRendition returns the first rendition in priority order whose url
// is a well-formed absolute http(s) URL, or nil.
func pickRendition(renditions map[string]any) map[string]any {
	for _, name := range renditionPriority {
		r, ok := renditions[name].(map[string]any)
		if !ok {
			continue
		}
		u, ok := r["url"].(string)
		if !ok || !isHTTPURL(u) {
			continue
		}
		return r
	}
	return nil
}

// pickThumbnail prefers the chosen rendition's own thumbnail, then
// scans the remaining renditions in fallback order.
func pickThumbnail(chosen, renditions map[string]any) *string {
	if t, ok := chosen["thumbnail"].(string); ok && isHTTPURL(t) {
		return &t
	}
	for _, name := range thumbnailPriority {
		r, ok := renditions[name].(map[string]any)
		if !ok {
			continue
		}
		if t, ok := r["thumbnail"].(string); ok && isHTTPURL(t) {
			return &t
		}
	}
	return nil
}

// contributorFields validates the user name and numeric user id, and
// builds the public profile URL.
func contributorFields(hit map[string]any) (Contributor, error) {
	name, err := stringField(hit, "user")
	if err != nil {
		return Contributor{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Contributor{}, fmt.Errorf("user is empty")
	}
	userID, err := intField(hit, "user_id")
	if err != nil {
		return Contributor{}, err
	}
	return Contributor{
		Name:       name,
		ProfileURL: fmt.Sprintf("https://pixabay.com/users/%s-%d/", url.PathEscape(name), userID),
	}, nil
}

// splitTags turns Pixabay's comma-separated tag string into a trimmed,
// non-empty list, preserving upstream order.
func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func intField(hit map[string]any, key string) (int, error) {
	raw, ok := hit[key]
	if !ok {
		return 0, fmt.Errorf("%s missing", key)
	}
	f, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("%s is not numeric", key)
	}
	return int(f), nil
}

func stringField(hit map[string]any, key string) (string, error) {
	raw, ok := hit[key]
	if !ok {
		return "", fmt.Errorf("%s missing", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string", key)
	}
	return s, nil
}

func urlField(hit map[string]any, key string) (string, error) {
	s, err := stringField(hit, key)
	if err != nil {
		return "", err
	}
	if !isHTTPURL(s) {
		return "", fmt.Errorf("%s is not an absolute http(s) URL", key)
	}
	return s, nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// optionalInt reads a nullable numeric field, mapping anything else to
// nil rather than an error.
func optionalInt(m map[string]any, key string) *int {
	f, ok := m[key].(float64)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}
