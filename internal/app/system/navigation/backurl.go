// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// ExcludedPrefixes are paths that must never be a return target
	// (e.g. "/theme", which only accepts POST).
	ExcludedPrefixes []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// ThemeBackURL is used after saving the theme preference.
var ThemeBackURL = BackURLOptions{
	ExcludedPrefixes: []string{"/theme", "/export."},
	Fallback:         "/",
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks the "return" query parameter then the form value, accepts only
// local absolute paths, and rejects excluded prefixes.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturnRaw(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturnRaw(strings.TrimSpace(r.FormValue("return")), "", "")
	}

	if ret != "" {
		for _, excluded := range opts.ExcludedPrefixes {
			if strings.HasPrefix(ret, excluded) {
				ret = ""
				break
			}
		}
	}
	if ret != "" {
		return ret
	}
	if opts.Fallback == "" {
		return "/"
	}
	return opts.Fallback
}
