package tools

import "pixabaymcp/internal/config"

// searchInputSchema is the argument schema shared by both search
// tools. Unknown fields are rejected at the protocol layer and again
// by ParseSearchRequest, so both transports behave identically.
func searchInputSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "What to search for, as plain descriptive text.",
				"minLength":   config.MinQueryLength,
				"maxLength":   config.MaxQueryLength,
			},
			"orientation": map[string]any{
				"type":        "string",
				"description": "Restrict results to an orientation.",
				"enum":        []string{"all", "horizontal", "vertical"},
				"default":     "all",
			},
			"safesearch": map[string]any{
				"type":        "boolean",
				"description": "Only return results suitable for all audiences.",
				"default":     true,
			},
			"per_page": map[string]any{
				"type":        "integer",
				"description": "How many results to return.",
				"minimum":     config.MinPerPage,
				"maximum":     config.MaxPerPage,
				"default":     config.DefaultPerPage,
			},
		},
		"required": []string{"query"},
	}
}
