package widget

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register exposes the widget document as a readable resource under
// the descriptor's URI. The CSP travels in the content metadata so the
// host can sandbox the document.
func Register(server *mcp.Server, d *Descriptor, html string) {
	server.AddResource(&mcp.Resource{
		URI:         d.URI,
		Name:        "pixabay-search",
		Title:       d.Title,
		Description: d.Description,
		MIMEType:    MIMEType,
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      d.URI,
				MIMEType: MIMEType,
				Text:     html,
				Meta: mcp.Meta{
					"openai/widgetCSP": map[string]any{
						"connect_domains":  d.CSP.ConnectDomains,
						"resource_domains": d.CSP.ResourceDomains,
					},
				},
			}},
		}, nil
	})
}
