// internal/urlnorm/urlnorm.go
package urlnorm

import (
	"net/url"
	"strings"
)

// StripViewerState removes the query string and fragment from a story
// URL, leaving the canonical scheme://host/path form. Viewer state
// (scroll position, step markers) lives in the query and fragment and
// must never appear in a shared link. Input that cannot be parsed as a
// URL is returned unchanged.
func StripViewerState(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

// WithEmbedFlag rewrites a story URL for iframe embedding: any existing
// query and fragment are cleared and a single embed=true parameter is
// set. Clearing first makes the function idempotent. If the input does
// not parse, the URL is truncated textually at the first '?' or '#'
// before the flag is appended.
func WithEmbedFlag(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		base := raw
		if i := strings.IndexAny(base, "?#"); i >= 0 {
			base = base[:i]
		}
		return base + "?embed=true"
	}
	u.RawQuery = "embed=true"
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

// SiteBase derives the site-wide URL from the current page location.
// Project-pages deployments serve the whole site under the first path
// segment, so that segment is kept; a page at the host root maps to
// origin + "/".
func SiteBase(location string) string {
	u, err := url.Parse(location)
	if err != nil {
		return ""
	}
	origin := u.Scheme + "://" + u.Host
	if seg := firstPathSegment(u.Path); seg != "" {
		return origin + "/" + seg + "/"
	}
	return origin + "/"
}

func firstPathSegment(path string) string {
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}
