package api

import "strings"

// DefaultBaseURL is used when no backend address is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// PathSuffix is the API prefix every backend route lives under.
const PathSuffix = "/api/v1"

// NormalizeBaseURL trims trailing slashes and appends PathSuffix when it
// is missing. Applying it twice yields the same result.
func NormalizeBaseURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return DefaultBaseURL
	}
	u = strings.TrimRight(u, "/")
	if !strings.HasSuffix(u, PathSuffix) {
		u += PathSuffix
	}
	return u
}
