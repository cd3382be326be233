package pixabay

import "strings"

// supportedLanguages is the fixed set of codes Pixabay accepts for the
// lang parameter.
var supportedLanguages = map[string]struct{}{
	"cs": {}, "da": {}, "de": {}, "en": {}, "es": {}, "fr": {}, "id": {},
	"it": {}, "hu": {}, "nl": {}, "no": {}, "pl": {}, "pt": {}, "ro": {},
	"sk": {}, "fi": {}, "sv": {}, "tr": {}, "vi": {}, "th": {}, "bg": {},
	"ru": {}, "el": {}, "ja": {}, "ko": {}, "zh": {},
}

// ResolveLocale reduces a BCP-47-ish locale tag to a Pixabay language
// code: the primary subtag (before "-" or "_"), lower-cased, if
// supported; otherwise fallback. It never fails.
func ResolveLocale(raw, fallback string) string {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return fallback
	}
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ToLower(tag)
	if _, ok := supportedLanguages[tag]; ok {
		return tag
	}
	return fallback
}
