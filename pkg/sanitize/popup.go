// Package sanitize cleans user supplied popup markup before it is embedded in
// a page. It is opt-in: the map context passes popup text through verbatim
// unless a sanitizer is configured.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	popupPolicyOnce sync.Once
	popupPolicy     *bluemonday.Policy
)

// Popup strips scripts, event handlers and unsafe URLs while keeping the
// inline formatting popups commonly use (<b>, <i>, <br>, links, images).
// Double quotes are entity-encoded, which also keeps the result safe inside
// the double-quoted JS string the marker templates emit.
func Popup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(popupSanitizer().Sanitize(trimmed))
}

func popupSanitizer() *bluemonday.Policy {
	popupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"b", "strong", "i", "em", "u", "br", "p", "span", "small",
			"ul", "ol", "li", "h1", "h2", "h3", "h4",
		)
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowAttrs("src", "alt", "width", "height").OnElements("img")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(false)
		policy.AllowAttrs("class").Globally()

		popupPolicy = policy
	})
	return popupPolicy
}
