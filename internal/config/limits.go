package config

const (
	// MinQueryLength and MaxQueryLength bound search queries after
	// trimming. Pixabay rejects queries over 100 characters.
	MinQueryLength = 1
	MaxQueryLength = 100

	// MinPerPage and MaxPerPage bound the per_page request field.
	// Pixabay accepts 3-200; the widget renders a single page.
	MinPerPage = 3
	MaxPerPage = 20

	// DefaultPerPage is applied when the caller omits per_page.
	DefaultPerPage = 6
)
