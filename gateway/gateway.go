package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"minicart/session"
)

// staleSubjectMsg is the exact 422 payload the backend emits when the token's
// subject claim is malformed. It invalidates the session silently: no
// redirect, the user finds out on the next protected action.
const staleSubjectMsg = "Subject must be a string"

// Gateway is the single path for every call to the backend. It attaches the
// bearer token when one is stored, stamps a request id, and turns
// authentication failures into a cleared session plus a navigation decision.
type Gateway struct {
	base     string
	hc       *http.Client
	sessions session.Store
	policy   Policy
	nav      Navigator
}

func New(baseURL string, timeout time.Duration, sessions session.Store, policy Policy, nav Navigator) *Gateway {
	return &Gateway{
		base:     strings.TrimRight(baseURL, "/"),
		hc:       &http.Client{Timeout: timeout},
		sessions: sessions,
		policy:   policy,
		nav:      nav,
	}
}

// Call describes one backend request. Out, when non-nil, receives the decoded
// 2xx response body. LoginAttempt marks the call as a login-form submission
// so a 401 is surfaced instead of triggering the redirect policy.
type Call struct {
	Method       string
	Path         string
	Query        url.Values
	Body         any
	Out          any
	LoginAttempt bool
}

type ctxKey int

const currentPathKey ctxKey = iota

// WithCurrentPath records the UI location the call originates from. The
// redirect policy uses it to pick the storefront or admin login page.
func WithCurrentPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, currentPathKey, path)
}

func currentPathFrom(ctx context.Context) string {
	if p, ok := ctx.Value(currentPathKey).(string); ok {
		return p
	}
	return "/"
}

func (g *Gateway) Do(ctx context.Context, call Call) error {
	var body io.Reader
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	u := g.base + call.Path
	if len(call.Query) > 0 {
		u += "?" + call.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, u, body)
	if err != nil {
		return fmt.Errorf("failed to build request %s %s: %w", call.Method, call.Path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if call.LoginAttempt {
		req.Header.Set("X-Login-Request", "true")
	}
	if token, ok := g.sessions.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.hc.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if call.Out != nil {
			if err := json.NewDecoder(resp.Body).Decode(call.Out); err != nil {
				return fmt.Errorf("failed to decode response for %s %s: %w", call.Method, call.Path, err)
			}
		}
		return nil
	}

	return g.handleFailure(ctx, resp, call)
}

// handleFailure maps a non-2xx response onto the error taxonomy and applies
// the session-clearing and redirect rules.
func (g *Gateway) handleFailure(ctx context.Context, resp *http.Response, call Call) error {
	msg := decodeMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		g.clearSession()
		if msg == "" {
			msg = "authentication failed"
		}
		apiErr := &APIError{Status: resp.StatusCode, Message: msg}
		if d := g.policy.Decide(currentPathFrom(ctx), call.LoginAttempt); d.Redirect {
			apiErr.RedirectTo = d.Target
			if g.nav != nil {
				g.nav.Navigate(d.Target)
			}
		}
		return apiErr

	case resp.StatusCode == http.StatusUnprocessableEntity && msg == staleSubjectMsg:
		g.clearSession()
		return &APIError{Status: resp.StatusCode, Message: msg}

	case resp.StatusCode >= 500:
		return &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("%s", msg)}

	default:
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
}

// clearSession drops the stored token. Clearing an already-empty store is a
// no-op, so concurrent failures may each clear without coordination.
func (g *Gateway) clearSession() {
	if err := g.sessions.Clear(); err != nil {
		log.Printf("WARN: Failed to clear session after auth failure: %v", err)
	}
}

// decodeMessage pulls the human-readable message out of an error payload.
// The backend uses "message" for its own errors and "msg" for JWT-layer ones.
func decodeMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Msg
}
