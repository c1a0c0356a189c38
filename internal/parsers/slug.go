package parsers

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/awardpool/awardpool/internal/wikipedia"
)

var (
	articleURLPattern = regexp.MustCompile(`https?://[^\s\]|]*/wiki/([^\s\]|#?]+)`)
	wikiLinkPattern   = regexp.MustCompile(`\[\[([^\]|]+)(?:\|[^\]]*)?\]\]`)
)

// ExtractSlug derives the stable identity string used to deduplicate people
// and works within one import. Preference order: the path segment of an
// embedded article URL, then the target of a [[...]] link, then the literal
// text with spaces replaced by underscores.
func ExtractSlug(text string) string {
	if m := articleURLPattern.FindStringSubmatch(text); m != nil {
		if decoded, err := url.PathUnescape(m[1]); err == nil {
			return decoded
		}
		return m[1]
	}
	if m := wikiLinkPattern.FindStringSubmatch(text); m != nil {
		return strings.ReplaceAll(strings.TrimSpace(m[1]), " ", "_")
	}
	plain := wikipedia.PlainText(text)
	return strings.ReplaceAll(plain, " ", "_")
}
