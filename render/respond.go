package render

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"minicart/gateway"
)

// Shared response helpers for the local /api handlers. Every handler funnels
// its failures through Error so core errors map to HTTP the same way
// everywhere.

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// CurrentPath returns the UI location the browser attached to the request.
// The redirect policy keys off it to pick the right login page.
func CurrentPath(r *http.Request) string {
	if p := r.Header.Get("X-Current-Path"); p != "" {
		return p
	}
	return "/"
}

// Error maps a core error onto an HTTP response. Auth failures include a
// "redirect" field naming the login page the UI should navigate to.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var verr gateway.ValidationError
	if errors.As(err, &verr) {
		JSON(w, http.StatusBadRequest, map[string]string{"message": verr.Error()})
		return
	}

	if errors.Is(err, gateway.ErrAuthRequired) {
		d := gateway.DefaultPolicy().Decide(CurrentPath(r), false)
		JSON(w, http.StatusUnauthorized, map[string]any{
			"message":  "Please log in to continue",
			"redirect": d.Target,
		})
		return
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		body := map[string]any{"message": apiErr.Message}
		if apiErr.RedirectTo != "" {
			body["redirect"] = apiErr.RedirectTo
		}
		JSON(w, apiErr.Status, body)
		return
	}

	var terr *gateway.TransportError
	if errors.As(err, &terr) {
		log.Printf("Backend transport failure: %v", err)
		JSON(w, http.StatusBadGateway, map[string]string{"message": "Backend is unavailable. Please try again."})
		return
	}

	log.Printf("Unhandled error in API handler: %v", err)
	JSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal error"})
}
