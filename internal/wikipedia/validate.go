package wikipedia

import (
	"net/url"
	"strings"
)

const articleMarker = "/wiki/"

// ValidationResult is the outcome of checking a user-supplied article URL.
type ValidationResult struct {
	IsValid   bool
	PageTitle string
}

// ValidateArticleURL checks that a URL points at a Wikipedia article and
// extracts the page title from it. Invalid input yields IsValid=false
// rather than an error; the caller decides how to surface that.
func ValidateArticleURL(rawURL string) ValidationResult {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ValidationResult{}
	}

	host := strings.ToLower(u.Hostname())
	if host != "wikipedia.org" && !strings.HasSuffix(host, ".wikipedia.org") {
		return ValidationResult{}
	}

	idx := strings.Index(u.Path, articleMarker)
	if idx < 0 {
		return ValidationResult{}
	}

	title := u.Path[idx+len(articleMarker):]
	if decoded, err := url.PathUnescape(title); err == nil {
		title = decoded
	}
	if title == "" {
		return ValidationResult{}
	}

	return ValidationResult{IsValid: true, PageTitle: title}
}
