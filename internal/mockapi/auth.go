package mockapi

import "regexp"

// bearerPattern accepts a Bearer scheme carrying either a classic personal
// access token or a fine-grained one. This is a format check only; no
// signature or revocation lookup happens anywhere in this service.
var bearerPattern = regexp.MustCompile(`^Bearer (ghp_|github_pat_)`)

// Authorizer gates the protected routes. With Enabled false every request
// passes, which is how test suites opt out of auth entirely.
type Authorizer struct {
	Enabled bool
}

// Authorize reports whether the given Authorization header value is
// acceptable.
func (a Authorizer) Authorize(header string) bool {
	if !a.Enabled {
		return true
	}
	if header == "" {
		return false
	}
	return bearerPattern.MatchString(header)
}
