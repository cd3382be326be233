package widget

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/widget.yaml
var configFiles embed.FS

//go:embed assets
var assetFiles embed.FS

// MIMEType marks the document as a host-renderable widget rather than
// plain HTML.
const MIMEType = "text/html+skybridge"

const (
	scriptAsset = "assets/pixabay-search.js"
	styleAsset  = "assets/pixabay-search.css"
)

// Descriptor describes the presentation resource that hosts render
// around the search tools' structured output.
type Descriptor struct {
	URI         string `yaml:"uri"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	CSP         CSP    `yaml:"csp"`
}

// CSP lists the origins the widget document is allowed to reach.
type CSP struct {
	ConnectDomains  []string `yaml:"connect_domains"`
	ResourceDomains []string `yaml:"resource_domains"`
}

// LoadDescriptor parses and validates the embedded widget manifest.
func LoadDescriptor() (*Descriptor, error) {
	data, err := configFiles.ReadFile("config/widget.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read widget manifest: %w", err)
	}

	var manifest struct {
		Widget Descriptor `yaml:"widget"`
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal widget manifest: %w", err)
	}

	d := manifest.Widget
	if d.URI == "" {
		return nil, fmt.Errorf("widget manifest: uri is required")
	}
	if d.Title == "" {
		return nil, fmt.Errorf("widget manifest: title is required")
	}
	return &d, nil
}

// Assets returns the bundled widget assets.
func Assets() fs.FS {
	return assetFiles
}

// BuildHTML assembles the widget document from a bundle. The script is
// required and its absence is an error; a missing stylesheet degrades
// to an unstyled widget.
func BuildHTML(assets fs.FS) (string, error) {
	script, err := fs.ReadFile(assets, scriptAsset)
	if err != nil {
		return "", fmt.Errorf("widget script %s missing: %w", scriptAsset, err)
	}

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	if style, styleErr := fs.ReadFile(assets, styleAsset); styleErr == nil {
		b.WriteString("<style>\n")
		b.Write(style)
		b.WriteString("\n</style>\n")
	}
	b.WriteString("</head>\n<body>\n<div id=\"pixabay-root\"></div>\n<script type=\"module\">\n")
	b.Write(script)
	b.WriteString("\n</script>\n</body>\n</html>\n")
	return b.String(), nil
}
