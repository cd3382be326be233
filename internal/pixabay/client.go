package pixabay

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pixabaymcp/internal/config"
)

const (
	// DefaultImageBaseURL is the Pixabay image search endpoint.
	DefaultImageBaseURL = "https://pixabay.com/api/"
	// DefaultVideoBaseURL is the Pixabay video search endpoint.
	DefaultVideoBaseURL = "https://pixabay.com/api/videos/"
	// DefaultTimeout is the default HTTP timeout for Pixabay requests.
	DefaultTimeout = 30 * time.Second
	// DefaultLanguage is the fallback lang parameter.
	DefaultLanguage = "en"

	// maxResponseBytes caps how much of an upstream body is read.
	maxResponseBytes = 4 << 20
)

// Client calls the Pixabay REST API. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	apiKey        string
	imageBaseURL  string
	videoBaseURL  string
	defaultLocale string
	httpClient    *http.Client
	logger        *slog.Logger
}

// ClientConfig configures a Client. Zero-value fields take defaults.
type ClientConfig struct {
	APIKey        string
	ImageBaseURL  string
	VideoBaseURL  string
	DefaultLocale string
	HTTPClient    *http.Client
	Logger        *slog.Logger
}

// NewClient creates a Pixabay client.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		apiKey:        cfg.APIKey,
		imageBaseURL:  cfg.ImageBaseURL,
		videoBaseURL:  cfg.VideoBaseURL,
		defaultLocale: cfg.DefaultLocale,
		httpClient:    cfg.HTTPClient,
		logger:        cfg.Logger,
	}
	if c.imageBaseURL == "" {
		c.imageBaseURL = DefaultImageBaseURL
	}
	if c.videoBaseURL == "" {
		c.videoBaseURL = DefaultVideoBaseURL
	}
	if c.defaultLocale == "" {
		c.defaultLocale = DefaultLanguage
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// SearchImages performs one image search call. Only photos are
// requested; orientation defaults to "all".
func (c *Client) SearchImages(ctx context.Context, p SearchParams) (*ImageSearchResult, error) {
	q, lang := c.buildQuery(p)
	q.Set("image_type", "photo")
	orientation := p.Orientation
	if orientation == "" {
		orientation = "all"
	}
	q.Set("orientation", orientation)

	c.logger.Debug("pixabay image search", "query", p.Query, "lang", lang)

	body, headers, err := c.get(ctx, c.imageBaseURL, q)
	if err != nil {
		return nil, err
	}

	images, total, err := mapImageResponse(body, c.logger)
	if err != nil {
		return nil, err
	}

	return &ImageSearchResult{
		Images:    images,
		TotalHits: total,
		RateLimit: parseRateLimit(headers),
		Locale:    lang,
	}, nil
}

// SearchVideos performs one video search call. The video endpoint takes
// no image_type or orientation parameters.
func (c *Client) SearchVideos(ctx context.Context, p SearchParams) (*VideoSearchResult, error) {
	q, lang := c.buildQuery(p)

	c.logger.Debug("pixabay video search", "query", p.Query, "lang", lang)

	body, headers, err := c.get(ctx, c.videoBaseURL, q)
	if err != nil {
		return nil, err
	}

	videos, total, err := mapVideoResponse(body, c.logger)
	if err != nil {
		return nil, err
	}

	return &VideoSearchResult{
		Videos:    videos,
		TotalHits: total,
		RateLimit: parseRateLimit(headers),
		Locale:    lang,
	}, nil
}

// buildQuery assembles the parameters shared by both endpoints and
// resolves the language to send upstream.
func (c *Client) buildQuery(p SearchParams) (url.Values, string) {
	lang := ResolveLocale(p.Locale, c.defaultLocale)

	safesearch := true
	if p.SafeSearch != nil {
		safesearch = *p.SafeSearch
	}

	perPage := config.DefaultPerPage
	if p.PerPage != nil {
		perPage = *p.PerPage
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", p.Query)
	q.Set("safesearch", strconv.FormatBool(safesearch))
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("lang", lang)
	return q, lang
}

// get executes one GET exchange and returns the body and headers on
// HTTP 200, or a classified APIError.
func (c *Client) get(ctx context.Context, baseURL string, q url.Values) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, wrapTransportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }() // Error ignored: response consumed

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode != http.StatusOK {
		// Best-effort body: classification falls back to the status
		// line when it cannot be read.
		if readErr != nil {
			body = nil
		}
		return nil, nil, classifyStatus(resp.StatusCode, body)
	}

	if readErr != nil {
		return nil, nil, wrapTransportError(ctx, readErr)
	}
	return body, resp.Header, nil
}
