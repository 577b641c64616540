package auth

import (
	"encoding/json"
	"net/http"

	"minicart/gateway"
	"minicart/render"
)

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler handles POST /api/auth/login. admin switches to the admin
// endpoint so the two login forms share one handler constructor.
func LoginHandler(c *Client, admin bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
			return
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		var err error
		if admin {
			err = c.AdminLogin(ctx, req.Email, req.Password)
		} else {
			err = c.Login(ctx, req.Email, req.Password)
		}
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"message": "Logged in"})
	}
}

func RegisterHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
			return
		}

		ctx := gateway.WithCurrentPath(r.Context(), render.CurrentPath(r))
		if err := c.Register(ctx, req.Name, req.Email, req.Password); err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
	}
}

func LogoutHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.Logout(); err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
	}
}

// StatusHandler reports whether a session is stored, so the UI can decide
// which navigation to show without a backend round trip.
func StatusHandler(c *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]bool{"signed_in": c.SignedIn()})
	}
}
