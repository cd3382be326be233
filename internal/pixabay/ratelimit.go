package pixabay

import (
	"net/http"
	"strconv"
	"strings"
)

// RateLimit reports the upstream quota headers. It is informational
// only and never gates behavior.
type RateLimit struct {
	Limit        int `json:"limit"`
	Remaining    int `json:"remaining"`
	ResetSeconds int `json:"resetSeconds"`
}

// parseRateLimit reads Pixabay's x-ratelimit-* headers opportunistically.
// If any of the three is absent or non-numeric the whole struct is
// omitted (nil), never an error.
func parseRateLimit(h http.Header) *RateLimit {
	limit, ok := headerInt(h, "x-ratelimit-limit")
	if !ok {
		return nil
	}
	remaining, ok := headerInt(h, "x-ratelimit-remaining")
	if !ok {
		return nil
	}
	reset, ok := headerInt(h, "x-ratelimit-reset")
	if !ok {
		return nil
	}
	return &RateLimit{Limit: limit, Remaining: remaining, ResetSeconds: reset}
}

func headerInt(h http.Header, key string) (int, bool) {
	v := strings.TrimSpace(h.Get(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
