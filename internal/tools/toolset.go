package tools

import (
	"context"
	"log/slog"

	"pixabaymcp/internal/pixabay"
)

// SearchClient is the upstream surface the tools depend on.
// *pixabay.Client satisfies it; tests substitute stubs.
type SearchClient interface {
	SearchImages(ctx context.Context, params pixabay.SearchParams) (*pixabay.ImageSearchResult, error)
	SearchVideos(ctx context.Context, params pixabay.SearchParams) (*pixabay.VideoSearchResult, error)
}

// Toolset bundles the dependencies shared by the Pixabay tools.
type Toolset struct {
	client        SearchClient
	logger        *slog.Logger
	defaultLocale string
	widgetURI     string
}

// ToolsetConfig configures NewToolset. Client is required; the rest
// fall back to sensible defaults.
type ToolsetConfig struct {
	Client        SearchClient
	Logger        *slog.Logger
	DefaultLocale string
	WidgetURI     string
}

func NewToolset(cfg ToolsetConfig) *Toolset {
	ts := &Toolset{
		client:        cfg.Client,
		logger:        cfg.Logger,
		defaultLocale: cfg.DefaultLocale,
		widgetURI:     cfg.WidgetURI,
	}
	if ts.logger == nil {
		ts.logger = slog.Default()
	}
	if ts.defaultLocale == "" {
		ts.defaultLocale = pixabay.DefaultLanguage
	}
	return ts
}
