package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"minicart/config"
)

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// GetConfigHandler returns the current configuration.
func GetConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.GetConfig()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
	}
}

// SaveConfigHandler validates and persists new configuration.
func SaveConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var newCfg config.Config
		if err := json.NewDecoder(r.Body).Decode(&newCfg); err != nil {
			writeJSONError(w, "Invalid request body.", http.StatusBadRequest)
			return
		}

		if err := validateBaseURL(newCfg.BackendBaseURL); err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if newCfg.FreeShippingThreshold < 0 || newCfg.FlatShippingFee < 0 || newCfg.TaxRate < 0 {
			writeJSONError(w, "Shipping and tax values must not be negative.", http.StatusBadRequest)
			return
		}

		if err := config.SaveConfig(newCfg); err != nil {
			log.Printf("Error saving config: %v", err)
			writeJSONError(w, "Failed to save configuration.", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Configuration saved."})
	}
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return nil // defaults applied on save
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("Backend base URL must be a full http(s) URL: " + raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("Backend base URL must use http or https: " + raw)
	}
	return nil
}
