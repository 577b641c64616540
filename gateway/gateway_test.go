package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicart/session"
)

type navRecorder struct {
	targets []string
}

func (n *navRecorder) Navigate(target string) {
	n.targets = append(n.targets, target)
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *session.MemStore, *navRecorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemStore()
	nav := &navRecorder{}
	gw := New(srv.URL, 5*time.Second, store, DefaultPolicy(), nav)
	return gw, store, nav
}

// TestDo_AttachesBearerToken verifies the stored token rides along as a
// bearer credential together with the request id stamp.
func TestDo_AttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth, gotRequestID, gotLoginHeader string
	gw, store, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotLoginHeader = r.Header.Get("X-Login-Request")
		w.Write([]byte(`{}`))
	})
	require.NoError(t, store.Set("tok-42"))

	require.NoError(t, gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/cart"}))
	assert.Equal(t, "Bearer tok-42", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Empty(t, gotLoginHeader)
}

// TestDo_Unauthenticated verifies calls without a session carry no
// Authorization header at all.
func TestDo_Unauthenticated(t *testing.T) {
	t.Parallel()

	var sawAuthHeader bool
	gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})

	require.NoError(t, gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/products"}))
	assert.False(t, sawAuthHeader)
}

// TestDo_LoginAttemptMarker verifies the login marker header is sent for
// calls flagged as login attempts.
func TestDo_LoginAttemptMarker(t *testing.T) {
	t.Parallel()

	var gotLoginHeader string
	gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotLoginHeader = r.Header.Get("X-Login-Request")
		w.Write([]byte(`{"access_token":"t"}`))
	})

	err := gw.Do(context.Background(), Call{
		Method:       http.MethodPost,
		Path:         "/auth/login",
		Body:         map[string]string{"email": "a@b.c", "password": "x"},
		LoginAttempt: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "true", gotLoginHeader)
}

// TestDo_DecodesResponse verifies a 2xx body lands in Out, including query
// encoding on the way out.
func TestDo_DecodesResponse(t *testing.T) {
	t.Parallel()

	gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(map[string]any{"total": 7})
	})

	var out struct {
		Total int `json:"total"`
	}
	q := url.Values{}
	q.Set("page", "2")
	require.NoError(t, gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/products", Query: q, Out: &out}))
	assert.Equal(t, 7, out.Total)
}

// TestDo_401ClearsSessionAndRedirects verifies the fail-closed path: any 401
// drops the token and routes to the storefront login.
func TestDo_401ClearsSessionAndRedirects(t *testing.T) {
	t.Parallel()

	gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"Token has expired"}`))
	})
	require.NoError(t, store.Set("stale"))

	ctx := WithCurrentPath(context.Background(), "/cart")
	err := gw.Do(ctx, Call{Method: http.MethodGet, Path: "/cart"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthExpired)

	_, ok := store.Get()
	assert.False(t, ok, "session must be absent after a 401")
	assert.Equal(t, []string{"/login"}, nav.targets)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "/login", apiErr.RedirectTo)
	assert.Equal(t, "Token has expired", apiErr.Message)
}

// TestDo_401FromAdminArea verifies the admin login page is chosen when the
// failure happens under /admin.
func TestDo_401FromAdminArea(t *testing.T) {
	t.Parallel()

	gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Admin access required"}`))
	})
	require.NoError(t, store.Set("stale"))

	ctx := WithCurrentPath(context.Background(), "/admin/orders")
	err := gw.Do(ctx, Call{Method: http.MethodGet, Path: "/admin/orders"})
	require.Error(t, err)
	assert.Equal(t, []string{"/admin/login"}, nav.targets)
}

// TestDo_401OnLoginAttempt verifies a failed login clears any stored token
// but never navigates, so the form can show "invalid credentials".
func TestDo_401OnLoginAttempt(t *testing.T) {
	t.Parallel()

	gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	})
	require.NoError(t, store.Set("old-token"))

	ctx := WithCurrentPath(context.Background(), "/login")
	err := gw.Do(ctx, Call{Method: http.MethodPost, Path: "/auth/login", LoginAttempt: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthExpired)

	_, ok := store.Get()
	assert.False(t, ok)
	assert.Empty(t, nav.targets, "a failed login must not redirect")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.RedirectTo)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

// TestDo_StaleSubject422 verifies the specific 422 payload invalidates the
// session silently: cleared, but no redirect.
func TestDo_StaleSubject422(t *testing.T) {
	t.Parallel()

	gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"msg":"Subject must be a string"}`))
	})
	require.NoError(t, store.Set("malformed-subject"))

	err := gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/cart"})
	require.Error(t, err)

	_, ok := store.Get()
	assert.False(t, ok)
	assert.Empty(t, nav.targets)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
}

// TestDo_Ordinary422KeepsSession verifies only the stale-subject message
// touches the session; other validation errors pass through.
func TestDo_Ordinary422KeepsSession(t *testing.T) {
	t.Parallel()

	gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"msg":"Not enough segments"}`))
	})
	require.NoError(t, store.Set("still-good"))

	err := gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/cart"})
	require.Error(t, err)

	token, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "still-good", token)
	assert.Empty(t, nav.targets)
}

// TestDo_NotFoundAndForbidden verifies the sentinel mapping for 404 and 403.
func TestDo_NotFoundAndForbidden(t *testing.T) {
	t.Parallel()

	status := http.StatusNotFound
	gw, store, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(`{"message":"nope"}`))
	})
	require.NoError(t, store.Set("tok"))

	err := gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/products/999"})
	assert.ErrorIs(t, err, ErrNotFound)

	status = http.StatusForbidden
	err = gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/admin/users"})
	assert.ErrorIs(t, err, ErrForbidden)

	// Neither response is an auth failure; the token stays.
	_, ok := store.Get()
	assert.True(t, ok)
}

// TestDo_ServerError verifies a 5xx surfaces as a transport error.
func TestDo_ServerError(t *testing.T) {
	t.Parallel()

	gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})

	err := gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/products"})
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.Status)
}

// TestDo_NetworkFailure verifies an unreachable backend surfaces as a
// transport error with no status.
func TestDo_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	gw := New(base, time.Second, session.NewMemStore(), DefaultPolicy(), nil)
	err := gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/cart"})

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.Status)
}
