package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPolicy_Decide verifies the login page is picked from the current
// location prefix and that login attempts never redirect.
func TestPolicy_Decide(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()

	tests := []struct {
		name         string
		currentPath  string
		loginAttempt bool
		want         Decision
	}{
		{"storefront page", "/products/7", false, Decision{Redirect: true, Target: "/login"}},
		{"storefront root", "/", false, Decision{Redirect: true, Target: "/login"}},
		{"cart page", "/cart", false, Decision{Redirect: true, Target: "/login"}},
		{"admin dashboard", "/admin", false, Decision{Redirect: true, Target: "/admin/login"}},
		{"admin subpage", "/admin/orders/3", false, Decision{Redirect: true, Target: "/admin/login"}},
		{"storefront login attempt", "/login", true, Decision{}},
		{"admin login attempt", "/admin/login", true, Decision{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, policy.Decide(tt.currentPath, tt.loginAttempt))
		})
	}
}
