package tools

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (ts *Toolset) searchMediaTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "pixabay_search_media",
		Description: "Search Pixabay for free stock photos and videos matching a plain-text description in one call. Returns both result sets with URLs, dimensions, tags and credits.",
		Annotations: &mcp.ToolAnnotations{Title: "Search Pixabay images and videos"},
		InputSchema: searchInputSchema(),
		Meta:        mcp.Meta{metaOutputTemplate: ts.widgetURI},
	}
}

func (ts *Toolset) handleSearchMedia(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, MediaPayload, error) {
	callID := uuid.NewString()
	start := time.Now()

	outcome, err := ts.RunMediaSearch(ctx, args, LocaleFromMeta(callMeta(req), ts.defaultLocale))
	if err != nil {
		ts.logCallFailure("media search", callID, err)
		return nil, MediaPayload{}, err
	}

	res := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: outcome.Summary}},
		Meta:    resultMeta(outcome.Locale, outcome.RateLimit),
	}

	ts.logger.Info("media search completed",
		"call_id", callID,
		"query", outcome.Payload.Query,
		"images", outcome.Payload.ImageCount,
		"videos", outcome.Payload.VideoCount,
		"duration_ms", time.Since(start).Milliseconds())
	return res, outcome.Payload, nil
}
