// Package htmlsanitize cleans the HTML fragments embedded in QC reports.
// It uses bluemonday to keep table markup, class names, and the two inline
// styles the percentage bars need, and strips everything else.
package htmlsanitize

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// policy is the shared bluemonday policy for report fragments.
	policy     *bluemonday.Policy
	policyOnce sync.Once

	percentWidth = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?%$`)
	cssColor     = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|rgba?\([0-9., ]+\))$`)
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.NewPolicy()

		policy.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption")
		policy.AllowElements("div", "span", "b", "i", "strong", "em")
		policy.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
		policy.AllowAttrs("class").OnElements("table", "thead", "tbody", "tr", "th", "td", "div", "span")

		// percentage bar
		policy.AllowStyles("width").Matching(percentWidth).OnElements("span")
		policy.AllowStyles("background-color").Matching(cssColor).OnElements("span", "td")
	})
	return policy
}

// Sanitize cleans a rendered fragment. Scripts, event handlers, links and
// unknown styles are removed.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}
