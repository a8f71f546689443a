package digest

import (
	"net/url"
	"regexp"
	"strings"
)

// trackingParams are query parameters removed from every link.
var trackingParams = map[string]bool{
	"fbclid":           true,
	"gclid":            true,
	"dclid":            true,
	"mc_cid":           true,
	"mc_eid":           true,
	"msclkid":          true,
	"_hsenc":           true,
	"_hsmi":            true,
	"mkt_tok":          true,
	"yclid":            true,
	"igshid":           true,
	"ck_subscriber_id": true,
	"ref_src":          true,
}

func isTrackingParam(name string) bool {
	name = strings.ToLower(name)
	return strings.HasPrefix(name, "utm_") || trackingParams[name]
}

// StripTracking removes tracking query parameters from an http(s) URL. The
// path, fragment and remaining parameters are kept in their original order.
// Anything that is not an absolute http(s) URL is returned unchanged.
func StripTracking(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.RawQuery == "" {
		return rawURL
	}

	parts := strings.Split(u.RawQuery, "&")
	kept := parts[:0]
	for _, p := range parts {
		name, _, _ := strings.Cut(p, "=")
		if unescaped, err := url.QueryUnescape(name); err == nil {
			name = unescaped
		}
		if p == "" || isTrackingParam(name) {
			continue
		}
		kept = append(kept, p)
	}
	u.RawQuery = strings.Join(kept, "&")
	u.ForceQuery = false
	return u.String()
}

// NormalizeURL returns the key used to detect duplicate links: tracking
// parameters and fragment removed, scheme and host lower-cased, trailing
// slash trimmed.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(StripTracking(strings.TrimSpace(rawURL))))
	if err != nil {
		return strings.TrimSpace(rawURL)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path != "/" {
		u.Path = strings.TrimRight(u.Path, "/")
		u.RawPath = ""
	}
	if u.Path == "/" && u.RawQuery == "" {
		u.Path = ""
	}
	return u.String()
}

var linkPattern = regexp.MustCompile(`https?://[^\s<>()\[\]"']+`)

// stripTrackingInText rewrites every http(s) URL in text.
func stripTrackingInText(text string) string {
	return linkPattern.ReplaceAllStringFunc(text, StripTracking)
}
