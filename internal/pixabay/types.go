package pixabay

// Contributor identifies the Pixabay account behind a hit.
type Contributor struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl"`
}

// ImageResult is a single validated image hit in output form.
type ImageResult struct {
	ID           int         `json:"id"`
	PreviewURL   string      `json:"previewUrl"`
	PageURL      string      `json:"pageUrl"`
	ImageURL     string      `json:"imageUrl"`
	ImageWidth   int         `json:"imageWidth"`
	ImageHeight  int         `json:"imageHeight"`
	Tags         []string    `json:"tags"`
	Photographer Contributor `json:"photographer"`
	Likes        int         `json:"likes"`
	Downloads    int         `json:"downloads"`
}

// VideoResult is a single validated video hit in output form. Nullable
// fields stay pointers so the JSON payload can distinguish "unknown"
// from zero.
type VideoResult struct {
	ID              int         `json:"id"`
	PageURL         string      `json:"pageUrl"`
	VideoURL        string      `json:"videoUrl"`
	PreviewImageURL *string     `json:"previewImageUrl"`
	Width           *int        `json:"width"`
	Height          *int        `json:"height"`
	DurationSeconds int         `json:"durationSeconds"`
	Tags            []string    `json:"tags"`
	Creator         Contributor `json:"creator"`
	Likes           *int        `json:"likes"`
	Downloads       *int        `json:"downloads"`
}

// SearchParams carries a normalized search request into the client.
// Nil optional fields take the documented defaults (safesearch on,
// six results, orientation "all").
type SearchParams struct {
	Query       string
	Orientation string
	SafeSearch  *bool
	PerPage     *int
	Locale      string
}

// ImageSearchResult is the mapped response of one image search call.
type ImageSearchResult struct {
	Images    []ImageResult
	TotalHits int
	RateLimit *RateLimit
	Locale    string // language code actually sent upstream
}

// VideoSearchResult is the mapped response of one video search call.
type VideoSearchResult struct {
	Videos    []VideoResult
	TotalHits int
	RateLimit *RateLimit
	Locale    string
}
