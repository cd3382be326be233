package tools

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pixabaymcp/internal/config"
)

// SearchRequest is a validated, normalized tool-call payload. Nil
// optional fields mean "caller did not say" and take the documented
// defaults downstream.
type SearchRequest struct {
	Query       string
	Orientation string
	SafeSearch  *bool
	PerPage     *int
}

// allowedArgKeys is the strict argument schema; any other key is a
// validation failure.
var allowedArgKeys = map[string]struct{}{
	"query":       {},
	"orientation": {},
	"safesearch":  {},
	"per_page":    {},
}

// ParseSearchRequest validates an untyped tool-call payload. All
// violated constraints are collected, so the returned error message
// enumerates every problem at once. It performs no I/O; callers run it
// before any network activity.
func ParseSearchRequest(args map[string]any) (SearchRequest, error) {
	errs := validation.Errors{}

	for key := range args {
		if _, ok := allowedArgKeys[key]; !ok {
			errs[key] = errors.New("is not a recognized field")
		}
	}

	var req SearchRequest

	if raw, present := args["query"]; !present {
		errs["query"] = errors.New("is required")
	} else if s, ok := raw.(string); !ok {
		errs["query"] = errors.New("must be a string")
	} else {
		trimmed := strings.TrimSpace(s)
		if n := utf8.RuneCountInString(trimmed); n < config.MinQueryLength || n > config.MaxQueryLength {
			errs["query"] = fmt.Errorf("length must be between %d and %d characters",
				config.MinQueryLength, config.MaxQueryLength)
		} else {
			req.Query = trimmed
		}
	}

	if raw, present := args["orientation"]; present {
		if s, ok := raw.(string); !ok {
			errs["orientation"] = errors.New("must be a string")
		} else if err := validation.Validate(s,
			validation.Required.Error("must be one of: all, horizontal, vertical"),
			validation.In("all", "horizontal", "vertical").Error("must be one of: all, horizontal, vertical"),
		); err != nil {
			errs["orientation"] = err
		} else {
			req.Orientation = s
		}
	}

	if raw, present := args["safesearch"]; present {
		if b, ok := raw.(bool); ok {
			req.SafeSearch = &b
		} else {
			errs["safesearch"] = errors.New("must be a boolean")
		}
	}

	if raw, present := args["per_page"]; present {
		if n, err := intArg(raw); err != nil {
			errs["per_page"] = err
		} else if n < config.MinPerPage || n > config.MaxPerPage {
			errs["per_page"] = fmt.Errorf("must be between %d and %d",
				config.MinPerPage, config.MaxPerPage)
		} else {
			req.PerPage = &n
		}
	}

	if len(errs) > 0 {
		return SearchRequest{}, errs
	}
	return req, nil
}

// intArg accepts JSON numbers that are integer-valued. Decoded JSON
// always yields float64; the int case covers direct Go callers.
func intArg(raw any) (int, error) {
	switch v := raw.(type) {
	case float64:
		if math.Trunc(v) != v {
			return 0, errors.New("must be an integer")
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, errors.New("must be an integer")
	}
}
