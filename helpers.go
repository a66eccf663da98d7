package inkstone

import "strings"

// buildURL joins path segments onto a base URL with single slashes.
func buildURL(base string, parts ...string) string {
	url := strings.TrimRight(base, "/")
	for _, part := range parts {
		url += "/" + strings.Trim(part, "/")
	}
	return url
}
