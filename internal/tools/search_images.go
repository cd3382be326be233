package tools

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (ts *Toolset) searchImagesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "pixabay_search_images",
		Description: "Search Pixabay for free stock photos matching a plain-text description. Returns image URLs, dimensions, tags, photographer credits and a short summary.",
		Annotations: &mcp.ToolAnnotations{Title: "Search Pixabay images"},
		InputSchema: searchInputSchema(),
		Meta:        mcp.Meta{metaOutputTemplate: ts.widgetURI},
	}
}

func (ts *Toolset) handleSearchImages(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, ImagesPayload, error) {
	callID := uuid.NewString()
	start := time.Now()

	outcome, err := ts.RunImageSearch(ctx, args, LocaleFromMeta(callMeta(req), ts.defaultLocale))
	if err != nil {
		ts.logCallFailure("image search", callID, err)
		return nil, ImagesPayload{}, err
	}

	res := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: outcome.Summary}},
		Meta:    resultMeta(outcome.Locale, outcome.RateLimit),
	}

	ts.logger.Info("image search completed",
		"call_id", callID,
		"query", outcome.Payload.Query,
		"results", outcome.Payload.ResultCount,
		"total_hits", outcome.Payload.TotalHits,
		"duration_ms", time.Since(start).Milliseconds())
	return res, outcome.Payload, nil
}

// logCallFailure keeps validation rejections at warning level; only
// upstream trouble is an error.
func (ts *Toolset) logCallFailure(operation, callID string, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		ts.logger.Warn("rejected "+operation+" call", "call_id", callID, "reason", err.Error())
		return
	}
	ts.logger.Error(operation+" failed", "call_id", callID, "error", err)
}
