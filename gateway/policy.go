package gateway

import "strings"

// Decision is the navigation outcome of an authentication failure.
type Decision struct {
	Redirect bool
	Target   string
}

// Policy decides where an unauthenticated user is sent. The choice keys off
// the current location prefix only: the client stores no role, so being under
// the admin area is the sole signal that the admin login applies. A login
// attempt never redirects, otherwise a failed login would bounce the user
// off the login form forever.
type Policy struct {
	AdminPrefix     string
	AdminLogin      string
	StorefrontLogin string
}

func DefaultPolicy() Policy {
	return Policy{
		AdminPrefix:     "/admin",
		AdminLogin:      "/admin/login",
		StorefrontLogin: "/login",
	}
}

func (p Policy) Decide(currentPath string, loginAttempt bool) Decision {
	if loginAttempt {
		return Decision{}
	}
	if strings.HasPrefix(currentPath, p.AdminPrefix) {
		return Decision{Redirect: true, Target: p.AdminLogin}
	}
	return Decision{Redirect: true, Target: p.StorefrontLogin}
}

// Navigator receives the redirect target when the policy fires. The actual
// navigation lives with the UI host; the gateway only reports the decision.
type Navigator interface {
	Navigate(target string)
}

type NavigatorFunc func(target string)

func (f NavigatorFunc) Navigate(target string) { f(target) }
