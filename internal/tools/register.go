package tools

import "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterAll wires every Pixabay tool into the server.
func RegisterAll(server *mcp.Server, ts *Toolset) {
	mcp.AddTool(server, ts.searchImagesTool(), ts.handleSearchImages)
	mcp.AddTool(server, ts.searchMediaTool(), ts.handleSearchMedia)
}
