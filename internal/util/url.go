package util

import (
	"net/url"
	"strings"
)

// EnsureURL normalizes a cell value into an absolute URL, defaulting the
// scheme to https. Empty input stays empty.
func EnsureURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + strings.TrimLeft(raw, "/")
}

// FaviconURL derives the /favicon.ico URL from an official-site URL, the
// last-resort logo candidate. Returns "" when no host can be extracted.
func FaviconURL(site string) string {
	site = EnsureURL(site)
	if site == "" {
		return ""
	}
	u, err := url.Parse(site)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/favicon.ico"
}
