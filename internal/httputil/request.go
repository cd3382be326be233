package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodyBytes bounds request bodies; search requests are tiny.
const maxBodyBytes = 1 << 20

// ParseJSON decodes JSON from the request body into the given
// destination. The body size is limited to prevent abuse. Unknown
// fields are left for the domain validator to reject so the error
// message enumerates them alongside any other violations.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
