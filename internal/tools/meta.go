package tools

import (
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pixabaymcp/internal/pixabay"
)

// Metadata keys exchanged with the host. The openai/* keys follow the
// Apps SDK conventions; the pixabay/* keys are ours.
const (
	metaOutputTemplate = "openai/outputTemplate"
	metaWidgetCSP      = "openai/widgetCSP"
	metaLocale         = "pixabay/locale"
	metaRateLimit      = "pixabay/rateLimit"
)

// localeMetaKeys are the call-metadata keys a host may use to carry
// the user's locale, in lookup order.
var localeMetaKeys = []string{"openai/locale", "openai/userLocale"}

// LocaleFromMeta extracts the caller's locale hint from call metadata,
// falling back when no usable hint is present.
func LocaleFromMeta(meta map[string]any, fallback string) string {
	for _, key := range localeMetaKeys {
		if v, ok := meta[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return fallback
}

func callMeta(req *mcp.CallToolRequest) map[string]any {
	if req == nil || req.Params == nil {
		return nil
	}
	return req.Params.Meta
}

// resultMeta builds the informational metadata attached to every tool
// result. It never influences behavior on the caller side.
func resultMeta(locale string, rl *pixabay.RateLimit) mcp.Meta {
	meta := mcp.Meta{metaLocale: locale}
	if rl != nil {
		meta[metaRateLimit] = map[string]any{
			"limit":        rl.Limit,
			"remaining":    rl.Remaining,
			"resetSeconds": rl.ResetSeconds,
		}
	}
	return meta
}
