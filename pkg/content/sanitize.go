package content

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/elevensolutions/whits/pkg/markup"
)

// ugcPolicy allows the markup typically found in user generated content.
// Policies are safe for concurrent use once built.
var ugcPolicy = bluemonday.UGCPolicy()

// Sanitize removes scripts, event handlers and other unsafe markup from an
// HTML fragment and returns the rest as raw content.
func Sanitize(fragment string) *markup.Raw {
	return markup.NewRaw(ugcPolicy.Sanitize(fragment))
}

// SanitizeWith is like Sanitize with a caller-supplied policy.
func SanitizeWith(policy *bluemonday.Policy, fragment string) *markup.Raw {
	return markup.NewRaw(policy.Sanitize(fragment))
}
