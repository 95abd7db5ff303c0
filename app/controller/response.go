package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"armario-outfits/repository"
	"armario-outfits/validation"
)

// writeJSON encodes body with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// It writes the 400 response itself and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Printf("❌ Failed to decode request body for %s: %v", r.URL.Path, err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return false
	}

	if err := validation.ValidateStruct(dst); err != nil {
		var ve *validation.RequestValidationError
		if errors.As(err, &ve) {
			log.Printf("❌ Validation failed for %s: %v", r.URL.Path, ve)
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "validation failed",
				"fields": ve.Fields,
			})
			return false
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// pathID parses the numeric segment that follows prefix in the URL path
// Path format: {prefix}{id} or {prefix}{id}/{suffix}
func pathID(r *http.Request, prefix string) (int, error) {
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	segment := strings.SplitN(rest, "/", 2)[0]
	if segment == "" {
		return 0, fmt.Errorf("id is required")
	}
	id, err := strconv.Atoi(segment)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id: %s", segment)
	}
	return id, nil
}

// writeRepositoryError maps not-found errors to 404 and everything else to 500
func writeRepositoryError(w http.ResponseWriter, action string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, fmt.Sprintf("Failed to %s: %v", action, err), http.StatusInternalServerError)
}
