// Package gist is a client library for the GitHub Gists REST API. It covers
// creating, fetching, updating, deleting, starring and forking gists, plus
// comment management. Decoded gists and comments keep a handle to the client
// that produced them, so chained calls like gist.Star or comment.Delete work
// without threading ids around.
package gist

import (
	"regexp"
	"strings"
)

const (
	// DefaultBaseURL is the root of the Gists resource family on the
	// GitHub REST API.
	DefaultBaseURL = "https://api.github.com/gists"

	acceptHeader = "application/vnd.github.v3+json"
	userAgent    = "mscno-gist-go"
)

var urlPattern = regexp.MustCompile(`^https?://(?:www\.)?.+`)

// CleanID extracts a bare gist id from a raw id or a full gist URL. For URLs
// the last non-empty path segment is taken; anything else is returned
// unchanged. Malformed ids are left for the API to reject.
func CleanID(idOrURL string) string {
	if !urlPattern.MatchString(idOrURL) {
		return idOrURL
	}
	parts := strings.Split(idOrURL, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}
