package tools

import (
	"fmt"
	"strings"

	"pixabaymcp/internal/pixabay"
)

// Attribution is the credit line attached to every payload, required
// by the Pixabay API terms.
const Attribution = "Powered by Pixabay"

// ImagesPayload is the structured result of an image-only search.
type ImagesPayload struct {
	Query       string                `json:"query"`
	ResultCount int                   `json:"resultCount"`
	TotalHits   int                   `json:"totalHits"`
	Images      []pixabay.ImageResult `json:"images"`
	Attribution string                `json:"attribution"`
}

// MediaPayload is the structured result of a combined image and video
// search.
type MediaPayload struct {
	Query          string                `json:"query"`
	ImageCount     int                   `json:"imageCount"`
	VideoCount     int                   `json:"videoCount"`
	TotalImageHits int                   `json:"totalImageHits"`
	TotalVideoHits int                   `json:"totalVideoHits"`
	Images         []pixabay.ImageResult `json:"images"`
	Videos         []pixabay.VideoResult `json:"videos"`
	Attribution    string                `json:"attribution"`
}

func imageSummary(count int, query string) string {
	if count == 0 {
		return fmt.Sprintf("No Pixabay images found for \"%s\". Try a different description or add more detail.", query)
	}
	return fmt.Sprintf("Found %s for \"%s\".", countNoun(count, "Pixabay image"), query)
}

func mediaSummary(imageCount, videoCount int, query string) string {
	if imageCount == 0 && videoCount == 0 {
		return fmt.Sprintf("No Pixabay results found for \"%s\". Try a different description or add more detail.", query)
	}
	parts := make([]string, 0, 2)
	if imageCount > 0 {
		parts = append(parts, countNoun(imageCount, "image"))
	}
	if videoCount > 0 {
		parts = append(parts, countNoun(videoCount, "video"))
	}
	return fmt.Sprintf("Found %s on Pixabay for \"%s\".", joinWithAnd(parts), query)
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func joinWithAnd(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}
