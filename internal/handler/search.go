package handler

import (
	"errors"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pixabaymcp/internal/httputil"
	"pixabaymcp/internal/pixabay"
	"pixabaymcp/internal/tools"
)

// SearchHandler exposes the search pipeline over plain HTTP for
// callers that do not speak the tool protocol.
type SearchHandler struct {
	toolset *tools.Toolset
	logger  *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(toolset *tools.Toolset, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		toolset: toolset,
		logger:  logger,
	}
}

// imageSearchResponse flattens the structured payload and decorates it
// with the summary and informational metadata.
type imageSearchResponse struct {
	Summary   string             `json:"summary"`
	Locale    string             `json:"locale"`
	RateLimit *pixabay.RateLimit `json:"rateLimit,omitempty"`
	tools.ImagesPayload
}

type mediaSearchResponse struct {
	Summary   string             `json:"summary"`
	Locale    string             `json:"locale"`
	RateLimit *pixabay.RateLimit `json:"rateLimit,omitempty"`
	tools.MediaPayload
}

// SearchImages runs an image search
// POST /v1/search/images
func (h *SearchHandler) SearchImages(w http.ResponseWriter, r *http.Request) {
	var args map[string]any
	if err := httputil.ParseJSON(w, r, &args); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := h.toolset.RunImageSearch(r.Context(), args, requestLocale(r))
	if err != nil {
		h.respondSearchError(w, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, imageSearchResponse{
		Summary:       outcome.Summary,
		Locale:        outcome.Locale,
		RateLimit:     outcome.RateLimit,
		ImagesPayload: outcome.Payload,
	})
}

// SearchMedia runs combined image and video searches
// POST /v1/search/media
func (h *SearchHandler) SearchMedia(w http.ResponseWriter, r *http.Request) {
	var args map[string]any
	if err := httputil.ParseJSON(w, r, &args); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := h.toolset.RunMediaSearch(r.Context(), args, requestLocale(r))
	if err != nil {
		h.respondSearchError(w, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, mediaSearchResponse{
		Summary:      outcome.Summary,
		Locale:       outcome.Locale,
		RateLimit:    outcome.RateLimit,
		MediaPayload: outcome.Payload,
	})
}

// requestLocale reads the caller's locale hint. REST callers pass it
// as a query parameter since there is no call metadata channel.
func requestLocale(r *http.Request) string {
	return r.URL.Query().Get("locale")
}

func (h *SearchHandler) respondSearchError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := httputil.GetRequestID(r)

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		h.logger.Warn("rejected search request", "request_id", requestID, "reason", err.Error())
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, "invalid search request", map[string]interface{}{
			"violations": verrs,
		})
		return
	}

	var apiErr *pixabay.APIError
	if errors.As(err, &apiErr) {
		h.logger.Error("search failed upstream",
			"request_id", requestID,
			"kind", apiErr.Kind,
			"upstream_status", apiErr.Status,
		)
		httputil.RespondError(w, statusForKind(apiErr.Kind), apiErr.Message)
		return
	}

	h.logger.Error("search failed", "request_id", requestID, "error", err)
	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}

// statusForKind maps upstream failure kinds onto this service's own
// status codes. Rate limiting propagates as-is; everything else is a
// gateway problem from the caller's point of view.
func statusForKind(kind pixabay.ErrorKind) int {
	switch kind {
	case pixabay.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}
